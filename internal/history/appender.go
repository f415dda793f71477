package history

import (
	"os"
	"runtime"
)

// Appender persists a single history line.
type Appender interface {
	Append(line string) error
}

// LineTerminator is the platform line separator written after every record.
var LineTerminator = lineTerminator(runtime.GOOS)

func lineTerminator(goos string) string {
	if goos == "windows" {
		return "\r\n"
	}
	return "\n"
}

// FileAppender appends lines to a text file. The file is opened and closed on
// every call, so no handle outlives a single write.
type FileAppender struct {
	path string
}

// NewFileAppender returns a FileAppender for path.
func NewFileAppender(path string) *FileAppender {
	return &FileAppender{path: path}
}

// Path returns the file the appender writes to.
func (a *FileAppender) Path() string {
	return a.path
}

// Append writes line followed by LineTerminator to the end of the file.
func (a *FileAppender) Append(line string) error {
	f, err := os.OpenFile(a.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	_, writeErr := f.WriteString(line + LineTerminator)
	closeErr := f.Close()
	if writeErr != nil {
		return writeErr
	}
	return closeErr
}
