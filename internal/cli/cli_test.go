package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/palabras/internal/api"
	"github.com/mcoot/palabras/internal/api/apierr"
	"github.com/mcoot/palabras/internal/api/response"
	"github.com/mcoot/palabras/internal/factory"
	"github.com/mcoot/palabras/internal/model"
	"github.com/mcoot/palabras/internal/testutil"
)

type CLISuite struct {
	suite.Suite
	app    *factory.TestApp
	server *httptest.Server
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func TestCLISuite(t *testing.T) {
	suite.Run(t, new(CLISuite))
}

func (s *CLISuite) SetupTest() {
	s.app = factory.NewTestApp()
	s.Require().NoError(s.app.LoadTestDictionary())
	s.server = httptest.NewServer(api.NewRouter(api.RouterConfig{
		Logger:         testutil.NopLogger(),
		GameController: s.app.GameController,
		Dictionary:     s.app.DictionaryService,
	}))
	s.stdout = &bytes.Buffer{}
	s.stderr = &bytes.Buffer{}

	bag := model.Rack(model.FullTileSet())
	rackUser := model.Rack{"C", "A", "S", "A", "O", "L", "E"}
	rackCPU := model.Rack{"S", "O", "L", "O", "E", "N", "T"}
	for _, tile := range append(rackUser.Clone(), rackCPU...) {
		s.Require().True(bag.Remove(tile))
	}
	s.Require().NoError(s.app.Storage.SaveGame(context.Background(), &model.Game{
		ID:       model.DefaultGameID,
		Board:    model.NewBoard(),
		Bag:      model.Bag(bag),
		RackUser: rackUser,
		RackCPU:  rackCPU,
	}))
}

func (s *CLISuite) TearDownTest() {
	s.server.Close()
}

func (s *CLISuite) newApp() *app {
	a := newApp(s.stdout, s.stderr)
	a.cfg.ServerURL = s.server.URL
	a.cfg.Output = OutputText
	return a
}

func (s *CLISuite) run(args ...string) error {
	s.stdout.Reset()
	s.stderr.Reset()
	cmd := newRootCmd(s.newApp())
	cmd.SetArgs(args)
	cmd.SetOut(s.stdout)
	cmd.SetErr(s.stderr)
	return cmd.Execute()
}

func (s *CLISuite) TestState() {
	s.Require().NoError(s.run("state"))

	out := s.stdout.String()
	s.Contains(out, "Rack: C A S A O L E")
	s.Contains(out, "Score: you 0, computer 0")
	s.Contains(out, "3p")
}

func (s *CLISuite) TestStateJSON() {
	s.Require().NoError(s.run("state", "-o", "json"))

	var state response.GameState
	s.Require().NoError(json.Unmarshal(s.stdout.Bytes(), &state))
	s.Equal([]string{"C", "A", "S", "A", "O", "L", "E"}, state.Rack)
	s.Len(state.Board, model.BoardSize)
}

func (s *CLISuite) TestPlayThenBoardShowsWord() {
	s.Require().NoError(s.run("play", "casa", "7", "6", "h"))
	s.Contains(s.stdout.String(), "Played CASA for 18 points")

	s.Require().NoError(s.run("state"))
	s.Contains(s.stdout.String(), "  C  A  S  A")
}

func (s *CLISuite) TestPlayRejectsBadArguments() {
	s.Error(s.run("play", "casa", "seven", "6", "H"))
	s.Error(s.run("play", "casa", "7", "6", "D"))
	s.Error(s.run("play", "casa", "7"))
}

func (s *CLISuite) TestPlayReportsServerError() {
	err := s.run("play", "xyz", "7", "6", "H")
	s.Require().Error(err)
	s.True(IsCode(err, apierr.CodeNotInDictionary))
}

func (s *CLISuite) TestComputer() {
	s.Require().NoError(s.run("cpu"))
	s.Contains(s.stdout.String(), "Computer played")
}

func (s *CLISuite) TestExchange() {
	s.Require().NoError(s.run("exchange", "c", "z"))
	s.Contains(s.stdout.String(), "Exchanged: C")

	s.Require().NoError(s.run("exchange", "z"))
	s.Contains(s.stdout.String(), "No tiles exchanged")
}

func (s *CLISuite) TestPassAndReset() {
	s.Require().NoError(s.run("pass"))
	s.Contains(s.stdout.String(), "Passed (1 in a row)")
	s.Require().NoError(s.run("pass"))
	s.Require().NoError(s.run("pass"))
	s.Contains(s.stdout.String(), "Game over!")
	s.Contains(s.stdout.String(), "Winner: DRAW")

	err := s.run("cpu")
	s.True(IsCode(err, apierr.CodeGameOver))

	s.Require().NoError(s.run("reset"))
	s.Contains(s.stdout.String(), "New game dealt")
}

func (s *CLISuite) TestHealth() {
	s.Require().NoError(s.run("health"))
	s.Contains(s.stdout.String(), "Status: ok")
}

// lines feeds a fixed script to the shell loop
func lines(input ...string) func() (string, error) {
	i := 0
	return func() (string, error) {
		if i >= len(input) {
			return "", io.EOF
		}
		i++
		return input[i-1], nil
	}
}

func (s *CLISuite) TestShellRunsScript() {
	a := s.newApp()
	a.inShell = true
	a.prepare()

	err := runShell(a, lines(
		"",
		"help",
		`play "casa" 7 6 H`,
		"play xyz 7 6 H",
		"state",
		"exit",
		"pass",
	))
	s.Require().NoError(err)

	out := s.stdout.String()
	s.Contains(out, "Commands:")
	s.Contains(out, "Played CASA for 18 points")
	s.Contains(out, "Score: you 18, computer 0")
	s.NotContains(out, "Passed")
	s.Contains(s.stderr.String(), "NOT_IN_DICTIONARY")
}

func (s *CLISuite) TestShellUnbalancedQuote() {
	a := s.newApp()
	a.prepare()

	_, err := runShellLine(a, `play "casa 7 6 H`)
	s.Error(err)
}

func TestBoardRendering(t *testing.T) {
	var buf bytes.Buffer
	out := NewOutput(OutputText, &buf, io.Discard)

	g := &model.Game{Board: model.NewBoard()}
	g.Board.Set(model.Position{Row: 7, Col: 7}, "LL")
	out.Print(response.GameStateFromModel(g))

	rows := strings.Split(buf.String(), "\n")
	// header, border, then row 0
	row7 := rows[2+7]
	if !strings.HasPrefix(row7, " 7 |") || !strings.Contains(row7, " LL") {
		t.Fatalf("unexpected row 7: %q", row7)
	}
	if !strings.Contains(rows[2], "3p") || !strings.Contains(rows[2], "2l") {
		t.Fatalf("unexpected row 0: %q", rows[2])
	}
}
