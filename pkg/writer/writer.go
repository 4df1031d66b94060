package writer

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Writer takes rendered command output and writes it out into a medium.
type Writer interface {
	Output(content string) error
}

// FileWriter is a Writer using a file as backing medium.
type FileWriter struct {
	Filename string
}

// Output writes the content into the given file, replacing whatever it held.
func (fw *FileWriter) Output(content string) error {
	f, err := os.OpenFile(fw.Filename, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func(f *os.File) {
		if err := f.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to close file %s\n", f.Name())
		}
	}(f)
	_, err = io.WriteString(f, terminate(content))
	return err
}

// StringWriter is writer which puts the generated output into a provided io.Writer such as bytes.Buffer for example.
type StringWriter struct {
	Out io.Writer
}

// Output will write the generated output into an attached io.Writer like bytes.Buffer.
func (sw *StringWriter) Output(content string) error {
	_, err := io.WriteString(sw.Out, terminate(content))
	return err
}

// New returns a FileWriter when filename is set and a StringWriter on out
// otherwise.
func New(filename string, out io.Writer) Writer {
	if filename != "" {
		return &FileWriter{Filename: filename}
	}
	return &StringWriter{Out: out}
}

func terminate(content string) string {
	if strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
