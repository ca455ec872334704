package tui

// Key bindings of the extractor panel
const (
	keyExtract    = "ctrl+e"
	keyCopy       = "ctrl+y"
	keyClear      = "ctrl+l"
	keyFocus      = "tab"
	keyFocusBack  = "shift+tab"
	keyCancel     = "esc"
	keyQuit       = "ctrl+c"
	keySubmit     = "enter"
	helpExtractor = "enter/ctrl+e extract • ctrl+y copy • ctrl+l clear • tab focus output • esc cancel • ctrl+c quit"
)
