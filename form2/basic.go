package form2

import (
	"fmt"
)

type shapeErr struct {
	panicObj interface{}
	stack    string
}

func (s *shapeErr) Error() string {
	return fmt.Sprintf("%s", s.panicObj)
}

// Unwrap returns the recovered error, if the panic value was one.
func (s *shapeErr) Unwrap() error {
	err, _ := s.panicObj.(error)
	return err
}

// Stack returns the stack trace captured when the shape construction panicked.
func (s *shapeErr) Stack() string {
	return s.stack
}
