package domain

import "fmt"

// Action identifies a user-triggerable command.
// The integer values only matter for ordering; persistence uses the names.
type Action int

// NoAction is returned when a name does not resolve to an action.
const NoAction Action = -1

const (
	// File
	NewWindow Action = iota
	NewTab
	OpenFile
	OpenLocation
	CloseTab
	SaveAs
	Print
	PrivateBrowsing
	CloseWindow

	// Edit
	Find
	FindNext
	FindPrevious
	Preferences

	// View
	ViewToolbar
	ViewBookmarksBar
	ViewStatusBar
	Stop
	ReloadPage
	ZoomIn
	ZoomNormal
	ZoomOut
	FullScreen
	PageSource

	// History
	HistoryBack
	HistoryForward
	HistoryHome
	ShowAllHistory
	ClearHistory

	// Bookmarks
	ShowAllBookmarks
	AddBookmark
	BookmarkAllTabs

	// Window
	NextTab
	PreviousTab
	ShowDownloads

	// Tools
	WebSearch
	ClearPrivateData
	ShowNetworkMonitor
	EnableWebInspector
	AdBlock

	// Help
	SwitchAppLanguage

	numActions
)

// ActionInfo is the catalog entry of an action.
type ActionInfo struct {
	Category    string
	Description string
	Name        string
}

// actionCatalog is indexed by Action. Names are serialization keys and must
// not contain ':' or '_'.
var actionCatalog = [numActions]ActionInfo{
	NewWindow:       {Name: "NewWindow", Category: "File", Description: "Open a new window"},
	NewTab:          {Name: "NewTab", Category: "File", Description: "Open a new tab"},
	OpenFile:        {Name: "OpenFile", Category: "File", Description: "Open a local file"},
	OpenLocation:    {Name: "OpenLocation", Category: "File", Description: "Focus the location bar"},
	CloseTab:        {Name: "CloseTab", Category: "File", Description: "Close the current tab"},
	SaveAs:          {Name: "SaveAs", Category: "File", Description: "Save the page as a file"},
	Print:           {Name: "Print", Category: "File", Description: "Print the page"},
	PrivateBrowsing: {Name: "PrivateBrowsing", Category: "File", Description: "Toggle private browsing"},
	CloseWindow:     {Name: "CloseWindow", Category: "File", Description: "Close the window"},

	Find:         {Name: "Find", Category: "Edit", Description: "Find in page"},
	FindNext:     {Name: "FindNext", Category: "Edit", Description: "Find next match"},
	FindPrevious: {Name: "FindPrevious", Category: "Edit", Description: "Find previous match"},
	Preferences:  {Name: "Preferences", Category: "Edit", Description: "Open preferences"},

	ViewToolbar:      {Name: "ViewToolbar", Category: "View", Description: "Toggle the toolbar"},
	ViewBookmarksBar: {Name: "ViewBookmarksBar", Category: "View", Description: "Toggle the bookmarks bar"},
	ViewStatusBar:    {Name: "ViewStatusBar", Category: "View", Description: "Toggle the status bar"},
	Stop:             {Name: "Stop", Category: "View", Description: "Stop loading"},
	ReloadPage:       {Name: "ReloadPage", Category: "View", Description: "Reload the page"},
	ZoomIn:           {Name: "ZoomIn", Category: "View", Description: "Zoom in"},
	ZoomNormal:       {Name: "ZoomNormal", Category: "View", Description: "Reset zoom"},
	ZoomOut:          {Name: "ZoomOut", Category: "View", Description: "Zoom out"},
	FullScreen:       {Name: "FullScreen", Category: "View", Description: "Toggle full screen"},
	PageSource:       {Name: "PageSource", Category: "View", Description: "View page source"},

	HistoryBack:    {Name: "HistoryBack", Category: "History", Description: "Go back"},
	HistoryForward: {Name: "HistoryForward", Category: "History", Description: "Go forward"},
	HistoryHome:    {Name: "HistoryHome", Category: "History", Description: "Go to the home page"},
	ShowAllHistory: {Name: "ShowAllHistory", Category: "History", Description: "Show all history"},
	ClearHistory:   {Name: "ClearHistory", Category: "History", Description: "Clear history"},

	ShowAllBookmarks: {Name: "ShowAllBookmarks", Category: "Bookmarks", Description: "Manage bookmarks"},
	AddBookmark:      {Name: "AddBookmark", Category: "Bookmarks", Description: "Bookmark this page"},
	BookmarkAllTabs:  {Name: "BookmarkAllTabs", Category: "Bookmarks", Description: "Bookmark all tabs"},

	NextTab:       {Name: "NextTab", Category: "Window", Description: "Switch to the next tab"},
	PreviousTab:   {Name: "PreviousTab", Category: "Window", Description: "Switch to the previous tab"},
	ShowDownloads: {Name: "ShowDownloads", Category: "Window", Description: "Show downloads"},

	WebSearch:          {Name: "WebSearch", Category: "Tools", Description: "Focus the search bar"},
	ClearPrivateData:   {Name: "ClearPrivateData", Category: "Tools", Description: "Clear private data"},
	ShowNetworkMonitor: {Name: "ShowNetworkMonitor", Category: "Tools", Description: "Show the network monitor"},
	EnableWebInspector: {Name: "EnableWebInspector", Category: "Tools", Description: "Toggle the web inspector"},
	AdBlock:            {Name: "AdBlock", Category: "Tools", Description: "Configure ad blocking"},

	SwitchAppLanguage: {Name: "SwitchAppLanguage", Category: "Help", Description: "Switch application language"},
}

// actionsByName is the reverse index of actionCatalog.
var actionsByName = buildActionIndex()

func buildActionIndex() map[string]Action {
	index := make(map[string]Action, numActions)
	for i := range numActions {
		index[actionCatalog[i].Name] = i
	}
	return index
}

// NumActions returns the number of actions in the catalog.
func NumActions() int {
	return int(numActions)
}

// AllActions returns every action in catalog order.
func AllActions() []Action {
	actions := make([]Action, 0, numActions)
	for a := range numActions {
		actions = append(actions, a)
	}
	return actions
}

// ActionName returns the canonical name of an action, or "" if it is out of range.
func ActionName(a Action) string {
	if !a.Valid() {
		return ""
	}
	return actionCatalog[a].Name
}

// ActionByName resolves a canonical name. Unknown names yield NoAction.
func ActionByName(name string) Action {
	if a, ok := actionsByName[name]; ok {
		return a
	}
	return NoAction
}

// ParseAction is ActionByName for user input: unknown names are an error
// wrapping ErrUnknownAction.
func ParseAction(name string) (Action, error) {
	a := ActionByName(name)
	if a == NoAction {
		return NoAction, fmt.Errorf("%w: '%s'", ErrUnknownAction, name)
	}
	return a, nil
}

// Valid reports whether a is one of the catalog actions.
func (a Action) Valid() bool {
	return a >= 0 && a < numActions
}

// Name returns the canonical name of the action.
func (a Action) Name() string {
	return ActionName(a)
}

// Category returns the menu group the action belongs to.
func (a Action) Category() string {
	if !a.Valid() {
		return ""
	}
	return actionCatalog[a].Category
}

// Description returns a short human readable description.
func (a Action) Description() string {
	if !a.Valid() {
		return ""
	}
	return actionCatalog[a].Description
}

// String implements fmt.Stringer.
func (a Action) String() string {
	if !a.Valid() {
		return "NoAction"
	}
	return actionCatalog[a].Name
}

// Categories returns the action categories in catalog order.
func Categories() []string {
	var categories []string
	seen := make(map[string]bool)
	for _, info := range actionCatalog {
		if seen[info.Category] {
			continue
		}
		seen[info.Category] = true
		categories = append(categories, info.Category)
	}
	return categories
}
