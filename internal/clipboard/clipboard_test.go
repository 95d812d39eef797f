package clipboard_test

import (
	"errors"
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/clipboard"
	mockclipboard "github.com/KirkDiggler/overlay-engine/internal/clipboard/mock"
	"github.com/KirkDiggler/overlay-engine/internal/domain/edit"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/KirkDiggler/overlay-engine/internal/testutils"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BridgeTestSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	board  *mockclipboard.MockBoard
	bridge *clipboard.Bridge
	held   string
}

func (s *BridgeTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.board = mockclipboard.NewMockBoard(s.ctrl)
	s.bridge = clipboard.NewBridge(s.board)
	s.held = ""
}

func (s *BridgeTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestBridgeSuite(t *testing.T) {
	suite.Run(t, new(BridgeTestSuite))
}

// holdText makes the mock behave like a real clipboard
func (s *BridgeTestSuite) holdText() {
	s.board.EXPECT().WriteAll(gomock.Any()).DoAndReturn(func(text string) error {
		s.held = text
		return nil
	}).AnyTimes()
	s.board.EXPECT().ReadAll().DoAndReturn(func() (string, error) {
		return s.held, nil
	}).AnyTimes()
}

func (s *BridgeTestSuite) TestRoundTrip() {
	s.holdText()
	group := testutils.CreateTestPack("raid").Elements[2]

	s.Require().NoError(s.bridge.Export(&group))
	s.Contains(s.held, `"schema":"v1"`)

	got, err := s.bridge.Import()
	s.Require().NoError(err)
	s.Equal("vitals", got.Name)
	s.Equal(element.TypeGroup, got.Type())
	s.Len(*got.Members(), 2)
	s.NotEqual(group.ID, got.ID, "imports get fresh ids")
}

func (s *BridgeTestSuite) TestSessionRoundTrip() {
	s.holdText()
	session := edit.NewSession(false)
	s.True(ovlerr.IsNotFound(s.bridge.ExportSession(session)))

	icon := testutils.CreateTestPack("raid").Elements[0]
	session.SetClipboard(&icon)
	s.Require().NoError(s.bridge.ExportSession(session))

	other := edit.NewSession(false)
	s.Require().NoError(s.bridge.ImportSession(other))
	s.Require().NotNil(other.Clipboard())
	s.Equal("might", other.Clipboard().Name)
}

func (s *BridgeTestSuite) TestImportErrors() {
	tests := []struct {
		name  string
		text  string
		check func(error) bool
	}{
		{name: "empty", text: "  \n", check: ovlerr.IsNotFound},
		{name: "not json", text: "hello", check: ovlerr.IsMalformed},
		{name: "no element", text: `{"schema":"v1"}`, check: ovlerr.IsMalformed},
		{name: "future schema", text: `{"schema":"v9","element":{"type":"text"}}`, check: ovlerr.IsSchema},
		{name: "unknown type", text: `{"element":{"type":"sprite"}}`, check: ovlerr.IsMalformed},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.board.EXPECT().ReadAll().Return(tt.text, nil)
			_, err := s.bridge.Import()
			s.Require().Error(err)
			s.True(tt.check(err), "got %v", err)
		})
	}
}

func (s *BridgeTestSuite) TestBoardFailures() {
	s.board.EXPECT().ReadAll().Return("", errors.New("no display"))
	_, err := s.bridge.Import()
	s.True(ovlerr.IsUnavailable(err))

	text := element.New("label", element.NewText())
	s.board.EXPECT().WriteAll(gomock.Any()).Return(errors.New("no display"))
	s.True(ovlerr.IsUnavailable(s.bridge.Export(&text)))

	s.True(ovlerr.IsInvalidArgument(s.bridge.Export(nil)))
}
