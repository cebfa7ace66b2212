package ui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/crew/internal/directory"
	"github.com/five82/crew/internal/randomuser"
	"github.com/five82/crew/internal/state"
)

func sampleRecords(n int) []directory.Record {
	records := make([]directory.Record, n)
	for i := range records {
		records[i] = directory.Record{
			First:        fmt.Sprintf("First%d", i),
			Last:         fmt.Sprintf("Last%d", i),
			Email:        fmt.Sprintf("user%d@example.com", i),
			Phone:        fmt.Sprintf("0161 496 00%02d", i),
			Picture:      fmt.Sprintf("https://randomuser.me/api/portraits/men/%d.jpg", i),
			City:         "Leeds",
			State:        "West Yorkshire",
			StreetNumber: 10 + i,
			StreetName:   "High Street",
			Postcode:     "LS1 4AP",
			DOB:          time.Date(1990, time.July, 4, 0, 0, 0, 0, time.UTC),
		}
	}
	return records
}

func namedRecords(names ...string) []directory.Record {
	records := make([]directory.Record, len(names))
	for i, n := range names {
		first, last, _ := strings.Cut(n, " ")
		records[i] = directory.Record{First: first, Last: last, Email: strings.ToLower(first) + "@example.com"}
	}
	return records
}

type fakeClipboard struct {
	text string
	err  error
}

func (f *fakeClipboard) write(text string) error {
	f.text = text
	return f.err
}

func newTestModel(t *testing.T, clip *fakeClipboard) Model {
	t.Helper()
	if clip == nil {
		clip = &fakeClipboard{}
	}
	m := New(Options{
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
		Clipboard: clip.write,
		Source:    "https://randomuser.me/api/",
	})
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

func loadedModel(t *testing.T, records []directory.Record) Model {
	t.Helper()
	m := newTestModel(t, nil)
	m, _ = update(t, m, usersLoadedMsg{records: records})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, want Model", next)
	}
	return model, cmd
}

// dispatch runs cmd and feeds its message back into the model.
func dispatch(t *testing.T, m Model, cmd tea.Cmd) Model {
	t.Helper()
	if cmd == nil {
		t.Fatalf("expected a command, got nil")
	}
	m, _ = update(t, m, cmd())
	return m
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(t *testing.T, m Model, keys ...tea.KeyMsg) Model {
	t.Helper()
	for _, k := range keys {
		m, _ = update(t, m, k)
	}
	return m
}

func TestView_BeforeWindowSize(t *testing.T) {
	m := New(Options{})
	if got := m.View(); got != "Loading..." {
		t.Fatalf("View = %q, want Loading...", got)
	}
}

func TestGallery_RendersOneCardPerRecordInOrder(t *testing.T) {
	m := loadedModel(t, sampleRecords(12))

	if m.dir.Len() != 12 || m.dir.VisibleCount() != 12 {
		t.Fatalf("directory holds %d/%d, want 12/12", m.dir.VisibleCount(), m.dir.Len())
	}

	view := m.View()
	last := -1
	for i := 0; i < 12; i++ {
		name := fmt.Sprintf("First%d Last%d", i, i)
		at := strings.Index(view, name+" ")
		if at < 0 {
			t.Fatalf("view missing card %q", name)
		}
		if at <= last {
			t.Fatalf("card %q rendered out of order", name)
		}
		last = at
	}
	if !strings.Contains(view, "user11@example.com") {
		t.Fatalf("view missing e-mail line")
	}
	if !strings.Contains(view, "Leeds, West Yorkshire") {
		t.Fatalf("view missing city line")
	}
	if !strings.Contains(view, "12 people") {
		t.Fatalf("header missing count")
	}
}

func TestSelectCard_EnterOpensModalThroughMessage(t *testing.T) {
	m := loadedModel(t, sampleRecords(12))
	cols := m.columns()

	// Walk the cursor to position 5.
	for i := 0; i < 5%cols; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	}
	for i := 0; i < 5/cols; i++ {
		m = press(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	if m.cursor != 5 {
		t.Fatalf("cursor = %d, want 5", m.cursor)
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.dir.IsOpen() {
		t.Fatalf("modal opened before selectCardMsg was handled")
	}
	msg := cmd()
	if sel, ok := msg.(selectCardMsg); !ok || sel.index != 5 {
		t.Fatalf("enter produced %#v, want selectCardMsg{5}", msg)
	}
	m, _ = update(t, m, msg)

	if !m.dir.IsOpen() {
		t.Fatalf("modal not open")
	}
	if m.detail.Index != 5 || !m.detail.CanPrev || !m.detail.CanNext {
		t.Fatalf("detail = %+v, want index 5 with both actions", m.detail)
	}

	view := m.View()
	for _, want := range []string{"First5 Last5", "user5@example.com", "15 High Street, West Yorkshire LS1 4AP", "07/04/1990", "6 / 12"} {
		if !strings.Contains(view, want) {
			t.Fatalf("modal view missing %q", want)
		}
	}
}

func TestModal_PrevAtFirstIsIgnored(t *testing.T) {
	m := loadedModel(t, sampleRecords(12))
	m, _ = update(t, m, selectCardMsg{index: 0})

	if m.detail.CanPrev {
		t.Fatalf("CanPrev = true at index 0")
	}
	if m.keys.Prev.Enabled() {
		t.Fatalf("Prev binding enabled at index 0")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, runes("p"))

	sel, ok := m.dir.Selection()
	if !ok || sel != 0 {
		t.Fatalf("selection = %d,%v want 0,true", sel, ok)
	}
	if _, err := m.dir.Prev(); !errors.Is(err, directory.ErrOutOfRange) {
		t.Fatalf("Prev err = %v, want ErrOutOfRange", err)
	}
}

func TestModal_NavigatesAndStopsAtLast(t *testing.T) {
	m := loadedModel(t, sampleRecords(3))
	m, _ = update(t, m, selectCardMsg{index: 1})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.detail.Index != 2 || m.detail.CanNext || !m.detail.CanPrev {
		t.Fatalf("detail after next = %+v", m.detail)
	}

	m = press(t, m, runes("n"))
	if m.detail.Index != 2 {
		t.Fatalf("next past the end moved to %d", m.detail.Index)
	}

	m = press(t, m, runes("p"))
	if m.detail.Index != 1 {
		t.Fatalf("prev moved to %d, want 1", m.detail.Index)
	}
}

func TestModal_SingleRecordDisablesBoth(t *testing.T) {
	m := loadedModel(t, sampleRecords(1))
	m, _ = update(t, m, selectCardMsg{index: 0})

	if m.detail.CanPrev || m.detail.CanNext {
		t.Fatalf("detail = %+v, want both disabled", m.detail)
	}
	if m.keys.Prev.Enabled() || m.keys.Next.Enabled() {
		t.Fatalf("prev/next bindings should be disabled")
	}
}

func TestModal_CloseIsIdempotentAndRestoresCursor(t *testing.T) {
	m := loadedModel(t, sampleRecords(6))
	m, _ = update(t, m, selectCardMsg{index: 4})

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.dir.IsOpen() {
		t.Fatalf("modal still open after esc")
	}
	if m.cursor != 4 {
		t.Fatalf("cursor = %d, want 4", m.cursor)
	}
	m.dir.Close()
	if _, ok := m.dir.Selection(); ok {
		t.Fatalf("selection present after close")
	}
}

func TestSelectCard_OutOfRangeIsNoop(t *testing.T) {
	m := loadedModel(t, sampleRecords(3))
	m, _ = update(t, m, selectCardMsg{index: 7})
	if m.dir.IsOpen() {
		t.Fatalf("modal opened for index outside result set")
	}
}

func TestSearch_SubmitFiltersCaseInsensitively(t *testing.T) {
	m := loadedModel(t, namedRecords("Alice Moore", "Natalia Costa", "Bob Smith"))

	m = press(t, m, runes("/"))
	if !m.searching {
		t.Fatalf("search not focused after /")
	}
	m = press(t, m, runes("ALI"))
	if m.dir.VisibleCount() != 3 {
		t.Fatalf("filter applied before submit")
	}

	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.searching {
		t.Fatalf("search still focused after enter")
	}
	if got := m.dir.VisibleCount(); got != 2 {
		t.Fatalf("visible = %d, want 2", got)
	}

	view := m.View()
	if !strings.Contains(view, "Alice Moore") || !strings.Contains(view, "Natalia Costa") {
		t.Fatalf("matching cards missing from view")
	}
	if strings.Contains(view, "Bob Smith") {
		t.Fatalf("hidden card rendered")
	}
	if !strings.Contains(view, `2 of 3 people match "ALI"`) {
		t.Fatalf("header missing filter summary")
	}
}

func TestSearch_QueryIsMatchedAsTyped(t *testing.T) {
	m := loadedModel(t, namedRecords("Grace", "Alice Moore"))

	m = press(t, m, runes("/"), runes("ce "), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.dir.Query(); got != "ce " {
		t.Fatalf("query = %q, want trailing space kept", got)
	}

	cards := m.dir.Cards()
	if cards[0].Visible {
		t.Fatalf("Grace shown for %q", "ce ")
	}
	if !cards[1].Visible {
		t.Fatalf("Alice Moore hidden for %q", "ce ")
	}
}

func TestSearch_LongQueryIsNotCut(t *testing.T) {
	long := strings.Repeat("a", 100)
	m := loadedModel(t, namedRecords("Alice Moore"))

	m = press(t, m, runes("/"), runes(long), tea.KeyMsg{Type: tea.KeyEnter})
	if got := m.dir.Query(); got != long {
		t.Fatalf("query length = %d, want %d", len(got), len(long))
	}
	if m.dir.VisibleCount() != 0 {
		t.Fatalf("long query matched a shorter name")
	}
}

func TestSearch_EscCancelsWithoutApplying(t *testing.T) {
	m := loadedModel(t, namedRecords("Alice Moore", "Bob Smith"))

	m = press(t, m, runes("/"), runes("bob"), tea.KeyMsg{Type: tea.KeyEsc})
	if m.searching {
		t.Fatalf("search still focused after esc")
	}
	if m.dir.VisibleCount() != 2 || m.dir.Query() != "" {
		t.Fatalf("esc applied the filter")
	}
}

func TestSearch_EmptyQueryShowsAll(t *testing.T) {
	m := loadedModel(t, namedRecords("Alice Moore", "Bob Smith"))
	m = press(t, m, runes("/"), runes("bob"), tea.KeyMsg{Type: tea.KeyEnter})
	if m.dir.VisibleCount() != 1 {
		t.Fatalf("visible = %d, want 1", m.dir.VisibleCount())
	}

	m = press(t, m, runes("/"), tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyBackspace}, tea.KeyMsg{Type: tea.KeyEnter})
	if m.dir.VisibleCount() != 2 {
		t.Fatalf("visible = %d, want 2", m.dir.VisibleCount())
	}
}

func TestSearch_NoMatchesShowsEmptyState(t *testing.T) {
	m := loadedModel(t, namedRecords("Alice Moore"))
	m = press(t, m, runes("/"), runes("zed"), tea.KeyMsg{Type: tea.KeyEnter})

	if !strings.Contains(m.View(), `No names match "zed"`) {
		t.Fatalf("missing no-match message")
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.dir.VisibleCount() != 1 {
		t.Fatalf("esc in gallery did not clear filter")
	}
}

func TestSearch_SelectionMapsThroughVisibleCards(t *testing.T) {
	m := loadedModel(t, namedRecords("Alice Moore", "Bob Smith", "Kate Mali"))
	m = press(t, m, runes("/"), runes("kate"), tea.KeyMsg{Type: tea.KeyEnter})

	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	msg := cmd()
	if sel, ok := msg.(selectCardMsg); !ok || sel.index != 2 {
		t.Fatalf("enter produced %#v, want selectCardMsg{2}", msg)
	}
}

func TestMouse_LeftClickSelectsCard(t *testing.T) {
	m := loadedModel(t, sampleRecords(6))
	cellW := m.cardOuterWidth() + cardGap

	click := tea.MouseMsg{
		X:      cellW + 2,
		Y:      headerHeight + 1,
		Button: tea.MouseButtonLeft,
		Action: tea.MouseActionPress,
	}
	m, cmd := update(t, m, click)
	m = dispatch(t, m, cmd)

	if !m.dir.IsOpen() || m.detail.Index != 1 {
		t.Fatalf("click opened %+v, want index 1", m.detail)
	}
}

func TestMouse_ClickOutsideCardsIgnored(t *testing.T) {
	m := loadedModel(t, sampleRecords(2))

	for _, msg := range []tea.MouseMsg{
		{X: 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
		{X: 1, Y: headerHeight + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease},
		{X: 5 * (m.cardOuterWidth() + cardGap), Y: headerHeight + 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress},
	} {
		_, cmd := update(t, m, msg)
		if cmd != nil {
			t.Fatalf("mouse %+v produced a command", msg)
		}
	}
}

func TestCopy_WritesEmailToClipboard(t *testing.T) {
	clip := &fakeClipboard{}
	m := newTestModel(t, clip)
	m, _ = update(t, m, usersLoadedMsg{records: sampleRecords(2)})
	m, _ = update(t, m, selectCardMsg{index: 1})

	m, cmd := update(t, m, runes("c"))
	m = dispatch(t, m, cmd)

	if clip.text != "user1@example.com" {
		t.Fatalf("clipboard = %q", clip.text)
	}
	if !strings.Contains(m.View(), "Copied user1@example.com") {
		t.Fatalf("modal missing copy confirmation")
	}
}

func TestCopy_FailureIsReported(t *testing.T) {
	clip := &fakeClipboard{err: errors.New("no clipboard utility")}
	m := newTestModel(t, clip)
	m, _ = update(t, m, usersLoadedMsg{records: sampleRecords(1)})
	m, _ = update(t, m, selectCardMsg{index: 0})

	m, cmd := update(t, m, runes("c"))
	m = dispatch(t, m, cmd)

	if !m.flashError || !strings.Contains(m.flash, "no clipboard utility") {
		t.Fatalf("flash = %q (error=%v)", m.flash, m.flashError)
	}
}

func TestFetchFailure_LeavesGalleryEmpty(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, usersLoadedMsg{err: &randomuser.StatusError{Code: 503, Status: "Service Unavailable"}})

	if m.dir.Len() != 0 {
		t.Fatalf("gallery has %d records after failure", m.dir.Len())
	}
	view := m.View()
	if !strings.Contains(view, "Could not load people") || !strings.Contains(view, "503") {
		t.Fatalf("view missing failure notice")
	}

	// Nothing to navigate.
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, runes("/"), tea.KeyMsg{Type: tea.KeyRight})
	if m.dir.IsOpen() || m.searching {
		t.Fatalf("empty gallery reacted to input")
	}
}

func TestEmptyResult_ShowsNotice(t *testing.T) {
	m := newTestModel(t, nil)
	m, _ = update(t, m, usersLoadedMsg{})
	if !strings.Contains(m.View(), "The API returned no people.") {
		t.Fatalf("missing empty-result notice")
	}
}

func TestCycleTheme_PersistsPrefs(t *testing.T) {
	m := loadedModel(t, sampleRecords(1))
	m = press(t, m, runes("T"))

	if m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", m.theme.Name)
	}
	data, err := os.ReadFile(m.prefsPath)
	if err != nil {
		t.Fatalf("prefs not written: %v", err)
	}
	if !strings.Contains(string(data), "Kanagawa") {
		t.Fatalf("prefs = %q, want Kanagawa", data)
	}
}

func TestCompactToggle_ShrinksCards(t *testing.T) {
	m := loadedModel(t, sampleRecords(3))
	wide := m.columns()
	assertCardFields(t, m.View(), "wide")

	m = press(t, m, runes("v"))
	if !m.compact {
		t.Fatalf("compact not toggled")
	}
	if m.columns() <= wide {
		t.Fatalf("compact columns = %d, want more than %d", m.columns(), wide)
	}
	assertCardFields(t, m.View(), "compact")
}

func assertCardFields(t *testing.T, view, density string) {
	t.Helper()
	for _, want := range []string{"First0 Last0", "user0@example.com", "Leeds, West Yorkshire", "randomuser.me/…/men/0"} {
		if !strings.Contains(view, want) {
			t.Fatalf("%s card missing %q", density, want)
		}
	}
}

func TestHelpOverlay_ToggleAndDismiss(t *testing.T) {
	m := loadedModel(t, sampleRecords(1))
	m = press(t, m, runes("?"))
	if !m.showHelp || !strings.Contains(m.View(), "Keyboard Shortcuts") {
		t.Fatalf("help overlay not shown")
	}
	m = press(t, m, runes("x"))
	if m.showHelp {
		t.Fatalf("help overlay not dismissed")
	}
}

func TestCursor_StaysWithinVisibleCards(t *testing.T) {
	m := loadedModel(t, sampleRecords(4))
	m = press(t, m, runes("G"))
	if m.cursor != 3 {
		t.Fatalf("cursor = %d, want 3", m.cursor)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 3 {
		t.Fatalf("cursor moved past the end to %d", m.cursor)
	}
	m = press(t, m, runes("g"))
	if m.cursor != 0 {
		t.Fatalf("cursor = %d, want 0", m.cursor)
	}
}

func TestLoadCmd_ReadsStoreAfterFetch(t *testing.T) {
	store := &state.Store{}
	load := func(context.Context) error {
		store.Begin()
		store.Update([]randomuser.User{{Name: randomuser.Name{First: "Ada", Last: "Lovelace"}}}, nil)
		return nil
	}

	msg, ok := loadCmd(context.Background(), store, load)().(usersLoadedMsg)
	if !ok {
		t.Fatalf("loadCmd did not produce usersLoadedMsg")
	}
	if msg.err != nil || len(msg.records) != 1 || msg.records[0].FullName() != "Ada Lovelace" {
		t.Fatalf("msg = %+v", msg)
	}

	boom := errors.New("connection refused")
	failing := func(context.Context) error {
		store.Update(nil, boom)
		return boom
	}
	msg = loadCmd(context.Background(), &state.Store{}, failing)().(usersLoadedMsg)
	if !errors.Is(msg.err, boom) || len(msg.records) != 0 {
		t.Fatalf("msg = %+v, want error and no records", msg)
	}
}

func TestNew_LoadingUntilFetchReports(t *testing.T) {
	m := New(Options{
		Store:     &state.Store{},
		Load:      func(context.Context) error { return nil },
		PrefsPath: filepath.Join(t.TempDir(), "prefs.toml"),
	})
	if !m.loading {
		t.Fatalf("model should start loading when a loader is configured")
	}
	if m.Init() == nil {
		t.Fatalf("Init returned nil command")
	}
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if !strings.Contains(m.View(), "Fetching people") {
		t.Fatalf("view missing loading state")
	}
	m, _ = update(t, m, usersLoadedMsg{records: sampleRecords(2)})
	if m.loading || m.dir.Len() != 2 {
		t.Fatalf("model not populated after load")
	}
}
