package transpiler

import "io"

// Writer receives the generated output.
type Writer interface {
	Emit(data []byte) error
}

type FileWriter struct {
	f io.Writer
}

func NewFileWriter(f io.Writer) *FileWriter {
	return &FileWriter{f: f}
}

func (w *FileWriter) Emit(data []byte) error {
	_, err := w.f.Write(data)
	return err
}
