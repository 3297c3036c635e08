package unixpipe

import "errors"

/*
descriptorSet stores pipe i's read end at index 2i and its write end at 2i+1.
open tracks which descriptors this process still holds.
*/
type descriptorSet struct {
	fds   []int
	open  []bool
	close func(fd int) error
}

func (s *descriptorSet) Pipes() int {
	return len(s.fds) / 2
}

func (s *descriptorSet) ReadEnd(i int) int {
	return s.fds[2*i]
}

func (s *descriptorSet) WriteEnd(i int) int {
	return s.fds[2*i+1]
}

func (s *descriptorSet) CloseRead(i int) error {
	return s.closeAt(2 * i)
}

func (s *descriptorSet) CloseWrite(i int) error {
	return s.closeAt(2*i + 1)
}

func (s *descriptorSet) CloseAll() error {
	var errs []error
	for idx := range s.fds {
		if err := s.closeAt(idx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *descriptorSet) Open() int {
	n := 0
	for _, o := range s.open {
		if o {
			n++
		}
	}
	return n
}

// closeAt closes the descriptor at idx once. The slot is marked closed even
// when close(2) fails: retrying a failed close may hit a reused descriptor.
func (s *descriptorSet) closeAt(idx int) error {
	if !s.open[idx] {
		return nil
	}
	s.open[idx] = false
	return s.close(s.fds[idx])
}
