package pairing

import "fmt"

// FileTooLargeError reports a file exceeding loader size limit
type FileTooLargeError struct {
	Name  string
	Size  int64
	Limit int64
}

func (e *FileTooLargeError) Error() string {
	return fmt.Sprintf("file %v exceeds %vMB limit (%v bytes)", e.Name, e.Limit/1024/1024, e.Size)
}
