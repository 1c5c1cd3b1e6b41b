package app

// Key binding constants used in handleKey.
const (
	KeyQuit        = "q"
	KeyQuitUpper   = "Q"
	KeyCtrlC       = "ctrl+c"
	KeySpace       = " "
	KeyTab         = "tab"
	KeyUp          = "up"
	KeyDown        = "down"
	KeyJ           = "j"
	KeyK           = "k"
	KeyCombine     = "c"
	KeySaveNote    = "s"
	KeyRename      = "r"
	KeyDelete      = "d"
	KeyClearAll    = "X"
	KeySearch      = "/"
	KeyFilterLang  = "f"
	KeyCycleLocale = "l"
	KeyEnhance     = "e"
	KeyAcceptEnh   = "a"
	KeyDiscardEnh  = "x"
)
