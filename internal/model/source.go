package model

// Path represents a file system path, kept as a distinct type rather than a
// bare string so signatures make the path-vs-arbitrary-string distinction
// explicit.
type Path string
