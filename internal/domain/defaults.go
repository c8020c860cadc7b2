package domain

// factoryBindings lists the factory scheme in binding order.
//
// No factory shortcuts for PrivateBrowsing, EnableWebInspector, AdBlock,
// SwitchAppLanguage, ViewToolbar, ViewBookmarksBar, ViewStatusBar,
// ShowNetworkMonitor, ShowAllHistory, ClearHistory and BookmarkAllTabs.
var factoryBindings = []struct {
	action Action
	keys   []string
}{
	{NewWindow, []string{"Ctrl+N"}},
	{NewTab, []string{"Ctrl+T"}},
	{OpenFile, []string{"Ctrl+O"}},
	// location bar shortcuts familiar from other browsers
	{OpenLocation, []string{"Ctrl+L", "Alt+O", "Alt+D"}},
	{CloseTab, []string{"Ctrl+W"}},
	{SaveAs, []string{"Ctrl+S"}},
	{Print, []string{"Ctrl+P"}},
	{CloseWindow, []string{"Ctrl+Shift+W"}},

	{Find, []string{"Ctrl+F"}},
	{FindNext, []string{"F3", "Ctrl+G"}},
	{FindPrevious, []string{"Shift+F3", "Ctrl+Shift+G"}},
	{Preferences, []string{"Ctrl+,"}},

	{Stop, []string{"Ctrl+.", "Esc"}},
	{ReloadPage, []string{"Ctrl+R", "F5"}},
	{ZoomIn, []string{"Ctrl+=", "Ctrl++"}},
	{ZoomNormal, []string{"Ctrl+0"}},
	{ZoomOut, []string{"Ctrl+_", "Ctrl+-"}},
	{FullScreen, []string{"F11"}},

	{HistoryBack, []string{"Alt+Left"}},
	{HistoryForward, []string{"Alt+Right"}},
	{HistoryHome, []string{"Ctrl+Shift+H"}},

	{ShowAllBookmarks, []string{"Ctrl+Shift+B"}},
	{AddBookmark, []string{"Ctrl+D"}},

	{NextTab, []string{"Ctrl+}", "Ctrl+PgDown", "Ctrl+]", "Ctrl+<", "Ctrl+Tab"}},
	{PreviousTab, []string{"Ctrl+{", "Ctrl+PgUp", "Ctrl+[", "Ctrl+>", "Ctrl+Shift+Tab"}},
	{ShowDownloads, []string{"Ctrl+Y"}},

	{PageSource, []string{"Ctrl+Alt+U"}},

	{WebSearch, []string{"Ctrl+K"}},
	{ClearPrivateData, []string{"Ctrl+Shift+Del"}},
}

// DefaultScheme generates the factory scheme. Each call returns a fresh copy.
func DefaultScheme() *Scheme {
	scheme := NewScheme()
	for _, b := range factoryBindings {
		for _, k := range b.keys {
			scheme.Add(b.action, MustParseKeySequence(k))
		}
	}
	return scheme
}
