package tui

// payloadLoadedMsg carries payload text read from a file, either at startup
// or after the watched file changed.
type payloadLoadedMsg struct {
	err    error
	source string
	text   string
}

// watchErrorMsg reports a failure of the file watcher itself.
type watchErrorMsg struct {
	err error
}
