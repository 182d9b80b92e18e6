package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/palabras/internal/api"
	"github.com/mcoot/palabras/internal/api/apierr"
	"github.com/mcoot/palabras/internal/api/response"
	"github.com/mcoot/palabras/internal/factory"
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/testutil"
)

// testServer wires the router to a test app with mocked randomness
type testServer struct {
	handler http.Handler
	app     *factory.TestApp
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	app := factory.NewTestApp()
	require.NoError(t, app.LoadTestDictionary())

	router := api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: app.GameController,
		Dictionary:     app.DictionaryService,
	})

	return &testServer{handler: router, app: app}
}

func (ts *testServer) request(method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Buffer
	if body != nil {
		b, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(b)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)
	return rr
}

// seed stores a game with the given racks and the rest of the set in the bag
func (ts *testServer) seed(t *testing.T, rackUser, rackCPU model.Rack) {
	t.Helper()
	bag := model.Rack(model.FullTileSet())
	for _, tile := range append(rackUser.Clone(), rackCPU...) {
		require.True(t, bag.Remove(tile))
	}
	require.NoError(t, ts.app.Storage.SaveGame(context.Background(), &model.Game{
		ID:       model.DefaultGameID,
		Board:    model.NewBoard(),
		Bag:      model.Bag(bag),
		RackUser: rackUser,
		RackCPU:  rackCPU,
	}))
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out))
	return out
}

func assertErrorCode(t *testing.T, rr *httptest.ResponseRecorder, status int, code string) {
	t.Helper()
	assert.Equal(t, status, rr.Code)
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Equal(t, code, resp.Error.Code)
}

func casaBody() map[string]any {
	return map[string]any{"word": "casa", "row": 7, "col": 6, "direction": "H"}
}

func TestHealthCheck(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	resp := decode[api.HealthResponse](t, rr)
	assert.Equal(t, "ok", resp.Status)
	assert.Positive(t, resp.DictionaryWords)
}

func TestGetStateDealsGame(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/game", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	state := decode[response.GameState](t, rr)
	require.Len(t, state.Board, model.BoardSize)
	require.Len(t, state.Board[0], model.BoardSize)
	assert.Equal(t, "3P", state.Board[7][7].Bonus)
	assert.Equal(t, "2L", state.Board[0][3].Bonus)
	assert.Equal(t, "", state.Board[0][1].Bonus)
	assert.Len(t, state.Rack, model.RackSize)
	assert.Equal(t, model.TotalTiles-2*model.RackSize, state.BagRemaining)
	assert.False(t, state.GameOver)
	assert.Nil(t, state.Winner)
}

func TestStateHidesComputerRack(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/game", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw))
	assert.NotContains(t, raw, "rack_cpu")
	assert.Contains(t, raw, "rack")
}

func TestPlayMove(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	rr := ts.request(http.MethodPost, "/api/v1/game/moves", casaBody())
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.PlayResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, 18, resp.Points)

	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.Equal(t, 18, state.ScoreUser)
	assert.Equal(t, "C", state.Board[7][6].Tile)
	assert.Equal(t, "A", state.Board[7][9].Tile)
	assert.Len(t, state.Rack, model.RackSize)
}

func TestPlayMoveDefaultsToHorizontal(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	rr := ts.request(http.MethodPost, "/api/v1/game/moves", map[string]any{"word": "casa", "row": 7, "col": 6})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, 18, decode[response.PlayResponse](t, rr).Points)

	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.Equal(t, "A", state.Board[7][9].Tile)
	assert.Equal(t, "", state.Board[8][6].Tile)
}

func TestPlayMoveErrors(t *testing.T) {
	tests := []struct {
		name   string
		rack   model.Rack
		body   any
		status int
		code   string
	}{
		{
			name:   "not in dictionary",
			rack:   model.Rack{"C", "A", "S", "A", "O", "L", "E"},
			body:   map[string]any{"word": "xyz", "row": 7, "col": 6, "direction": "H"},
			status: http.StatusBadRequest,
			code:   apierr.CodeNotInDictionary,
		},
		{
			name:   "misses centre",
			rack:   model.Rack{"C", "A", "S", "A", "O", "L", "E"},
			body:   map[string]any{"word": "casa", "row": 0, "col": 0, "direction": "H"},
			status: http.StatusBadRequest,
			code:   apierr.CodeInvalidPlacement,
		},
		{
			name:   "missing tile",
			rack:   model.Rack{"C", "A", "S", "O", "L", "E", "E"},
			body:   casaBody(),
			status: http.StatusBadRequest,
			code:   apierr.CodeMissingTile,
		},
		{
			name:   "bad direction",
			rack:   model.Rack{"C", "A", "S", "A", "O", "L", "E"},
			body:   map[string]any{"word": "casa", "row": 7, "col": 6, "direction": "D"},
			status: http.StatusBadRequest,
			code:   apierr.CodeInvalidRequest,
		},
		{
			name:   "empty word",
			rack:   model.Rack{"C", "A", "S", "A", "O", "L", "E"},
			body:   map[string]any{"word": " ", "row": 7, "col": 6, "direction": "H"},
			status: http.StatusBadRequest,
			code:   apierr.CodeNotInDictionary,
		},
		{
			name:   "no word",
			rack:   model.Rack{"C", "A", "S", "A", "O", "L", "E"},
			body:   map[string]any{"row": 7, "col": 6},
			status: http.StatusBadRequest,
			code:   apierr.CodeNotInDictionary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.seed(t, tt.rack, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

			rr := ts.request(http.MethodPost, "/api/v1/game/moves", tt.body)
			assertErrorCode(t, rr, tt.status, tt.code)

			state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
			assert.Zero(t, state.ScoreUser)
			assert.Equal(t, "", state.Board[7][7].Tile)
		})
	}
}

func TestMissingTileMessageNamesTile(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "O", "L", "E", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	rr := ts.request(http.MethodPost, "/api/v1/game/moves", casaBody())
	resp := decode[apierr.ErrorResponse](t, rr)
	assert.Contains(t, resp.Error.Message, "A")
}

func TestInvalidBody(t *testing.T) {
	ts := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/game/moves", bytes.NewBufferString("{not json"))
	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	assertErrorCode(t, rr, http.StatusBadRequest, apierr.CodeInvalidRequest)
}

func TestComputerMove(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"E", "E", "E", "E", "I", "I", "U"}, model.Rack{"C", "A", "S", "A", "O", "L", "E"})

	rr := ts.request(http.MethodPost, "/api/v1/game/computer", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.ComputerResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, "word", resp.Action)
	assert.NotEmpty(t, resp.Word)
	assert.Positive(t, resp.Points)

	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.Equal(t, resp.Points, state.ScoreCPU)
	assert.NotEqual(t, "", state.Board[7][7].Tile)
}

func TestComputerExchangesWhenStuck(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"Z", "X", "Q", "J", "Ñ", "H", "F"})

	rr := ts.request(http.MethodPost, "/api/v1/game/computer", nil)
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.ComputerResponse](t, rr)
	assert.Equal(t, "exchange", resp.Action)
	assert.NotEmpty(t, resp.Message)
	assert.Zero(t, resp.Points)
}

func TestExchange(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	rr := ts.request(http.MethodPost, "/api/v1/game/exchange", map[string]any{"tiles": []string{"c", "Z"}})
	require.Equal(t, http.StatusOK, rr.Code)

	resp := decode[response.ExchangeResponse](t, rr)
	assert.True(t, resp.Success)
	assert.Equal(t, []string{"C"}, resp.Returned)

	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.Len(t, state.Rack, model.RackSize)
	assert.Equal(t, model.TotalTiles-2*model.RackSize, state.BagRemaining)
}

func TestPassUntilGameOver(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})

	game, err := ts.app.Storage.GetGame(context.Background(), model.DefaultGameID)
	require.NoError(t, err)
	game.ScoreUser = 120
	game.ScoreCPU = 95
	require.NoError(t, ts.app.Storage.SaveGame(context.Background(), game))

	for i := 1; i < model.MaxConsecutivePasses; i++ {
		rr := ts.request(http.MethodPost, "/api/v1/game/pass", nil)
		require.Equal(t, http.StatusOK, rr.Code)
		resp := decode[response.PassResponse](t, rr)
		assert.True(t, resp.Success)
		assert.False(t, resp.GameOver)
		assert.Equal(t, i, resp.ConsecutivePasses)
	}

	rr := ts.request(http.MethodPost, "/api/v1/game/pass", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[response.PassResponse](t, rr)
	assert.True(t, resp.GameOver)
	assert.Equal(t, "USER", resp.Winner)
	require.NotNil(t, resp.FinalScores)
	assert.Equal(t, 120, resp.FinalScores.User)
	assert.Equal(t, 95, resp.FinalScores.CPU)

	// The game stays over until reset
	assertErrorCode(t, ts.request(http.MethodPost, "/api/v1/game/moves", casaBody()), http.StatusConflict, apierr.CodeGameOver)
	assertErrorCode(t, ts.request(http.MethodPost, "/api/v1/game/computer", nil), http.StatusConflict, apierr.CodeGameOver)

	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.True(t, state.GameOver)
	require.NotNil(t, state.Winner)
	assert.Equal(t, "USER", *state.Winner)
}

func TestReset(t *testing.T) {
	ts := newTestServer(t)
	ts.seed(t, model.Rack{"C", "A", "S", "A", "O", "L", "E"}, model.Rack{"S", "O", "L", "O", "E", "N", "T"})
	require.Equal(t, http.StatusOK, ts.request(http.MethodPost, "/api/v1/game/moves", casaBody()).Code)

	rr := ts.request(http.MethodPost, "/api/v1/game/reset", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, decode[response.SuccessResponse](t, rr).Success)

	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.Zero(t, state.ScoreUser)
	assert.Equal(t, "", state.Board[7][7].Tile)
	assert.Equal(t, model.TotalTiles-2*model.RackSize, state.BagRemaining)
}

func TestUnknownRoute(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/lobbies", nil)
	assertErrorCode(t, rr, http.StatusNotFound, apierr.CodeNotFound)

	rr = ts.request(http.MethodGet, "/favicon.ico", nil)
	assertErrorCode(t, rr, http.StatusNotFound, apierr.CodeNotFound)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t)

	rr := ts.request(http.MethodGet, "/api/v1/game/pass", nil)
	assertErrorCode(t, rr, http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed)

	rr = ts.request(http.MethodDelete, "/api/v1/game", nil)
	assertErrorCode(t, rr, http.StatusMethodNotAllowed, apierr.CodeMethodNotAllowed)

	// The game is untouched
	state := decode[response.GameState](t, ts.request(http.MethodGet, "/api/v1/game", nil))
	assert.Zero(t, state.ConsecutivePasses)
}
