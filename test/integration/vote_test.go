package integration

import (
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermanngumbu/alx-polly/internal/core/domain"
)

func (app *TestApp) createPoll(t *testing.T, token string, question string, options []string) domain.Poll {
	t.Helper()
	resp := app.doJSON(t, "POST", "/api/polls", token, map[string]any{
		"question": question,
		"options":  options,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody[domain.Poll](t, resp)
}

func TestVoteFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := app.createUserAndToken(t)
	_, voterToken := app.createUserAndToken(t)

	poll := app.createPoll(t, ownerToken, "Color?", []string{"Red", "Blue"})
	votePath := "/api/polls/" + poll.ID.String() + "/votes"

	t.Run("requires authentication", func(t *testing.T) {
		resp := app.doJSON(t, "POST", votePath, "", map[string]any{"option_index": 0})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("rejects out-of-range option index", func(t *testing.T) {
		for _, idx := range []int{-1, len(poll.Options)} {
			resp := app.doJSON(t, "POST", votePath, voterToken, map[string]any{"option_index": idx})
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "index %d", idx)
			resp.Body.Close()
		}
	})

	t.Run("non-owner votes on an existing poll", func(t *testing.T) {
		resp := app.doJSON(t, "POST", votePath, voterToken, map[string]any{"option_index": 0})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusCreated, resp.StatusCode)
	})

	t.Run("second vote conflicts regardless of index", func(t *testing.T) {
		resp := app.doJSON(t, "POST", votePath, voterToken, map[string]any{"option_index": 1})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusConflict, resp.StatusCode)

		var count int
		require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", poll.ID).Scan(&count))
		assert.Equal(t, 1, count)
	})

	t.Run("vote on missing poll", func(t *testing.T) {
		resp := app.doJSON(t, "POST", "/api/polls/11111111-1111-1111-1111-111111111111/votes", voterToken, map[string]any{"option_index": 0})
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("results tally per option", func(t *testing.T) {
		resp := app.doJSON(t, "POST", votePath, ownerToken, map[string]any{"option_index": 1})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()

		resp = app.doJSON(t, "GET", "/api/polls/"+poll.ID.String()+"/results", voterToken, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		results := decodeBody[domain.PollResults](t, resp)
		assert.Equal(t, []string{"Red", "Blue"}, results.Options)
		assert.Equal(t, []int64{1, 1}, results.Counts)
		assert.Equal(t, int64(2), results.Total)
	})
}

// TestConcurrentDuplicateVotes fires parallel votes from one user at one
// poll; the unique constraint must let exactly one through.
func TestConcurrentDuplicateVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := app.createUserAndToken(t)
	_, voterToken := app.createUserAndToken(t)
	poll := app.createPoll(t, ownerToken, "Race?", []string{"a", "b"})
	votePath := "/api/polls/" + poll.ID.String() + "/votes"

	const attempts = 10
	statuses := make([]int, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := app.doJSON(t, "POST", votePath, voterToken, map[string]any{"option_index": i % 2})
			statuses[i] = resp.StatusCode
			resp.Body.Close()
		}(i)
	}
	wg.Wait()

	var created int
	for _, status := range statuses {
		switch status {
		case http.StatusCreated:
			created++
		case http.StatusConflict:
		default:
			t.Fatalf("unexpected status %d", status)
		}
	}
	assert.Equal(t, 1, created, "exactly one vote may succeed")

	var count int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", poll.ID).Scan(&count))
	assert.Equal(t, 1, count)
}

// TestDeleteCascadesVotes: deleting a poll removes its votes via the foreign
// key cascade.
func TestDeleteCascadesVotes(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, ownerToken := app.createUserAndToken(t)
	poll := app.createPoll(t, ownerToken, "Gone soon?", []string{"yes", "no"})

	for i := 0; i < 3; i++ {
		_, voterToken := app.createUserAndToken(t)
		resp := app.doJSON(t, "POST", "/api/polls/"+poll.ID.String()+"/votes", voterToken, map[string]any{"option_index": i % 2})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	var count int
	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", poll.ID).Scan(&count))
	require.Equal(t, 3, count)

	resp := app.doJSON(t, "DELETE", "/api/polls/"+poll.ID.String(), ownerToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, app.DB.QueryRow("SELECT COUNT(*) FROM votes WHERE poll_id = $1", poll.ID).Scan(&count))
	assert.Zero(t, count, "votes must be gone with the poll")
}
