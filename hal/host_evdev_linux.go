//go:build !tinygo && linux

package hal

import (
	"encoding/binary"
	"io"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

const evKey = 0x01

// Linux input-event-codes.h
const (
	evdevKeyEsc       = 1
	evdevKeyBackspace = 14
	evdevKeyEnter     = 28
	evdevKeyA         = 30
	evdevKeyB         = 48
	evdevKeySpace     = 57
	evdevKeyF1        = 59
	evdevKeyF2        = 60
	evdevKeyKPEnter   = 96
	evdevKeyUp        = 103
	evdevKeyLeft      = 105
	evdevKeyRight     = 106
	evdevKeyDown      = 108
)

// evdevKeyEvent maps a key record to a KeyEvent. Autorepeat (value 2) and
// unmapped codes are dropped.
func evdevKeyEvent(code uint16, value int32) (KeyEvent, bool) {
	if value != 0 && value != 1 {
		return KeyEvent{}, false
	}
	ev := KeyEvent{Press: value == 1}
	switch code {
	case evdevKeyEsc:
		ev.Code = KeyEscape
	case evdevKeyBackspace:
		ev.Code = KeyBackspace
	case evdevKeyEnter, evdevKeyKPEnter:
		ev.Code = KeyEnter
	case evdevKeyUp:
		ev.Code = KeyUp
	case evdevKeyDown:
		ev.Code = KeyDown
	case evdevKeyLeft:
		ev.Code = KeyLeft
	case evdevKeyRight:
		ev.Code = KeyRight
	case evdevKeyF1:
		ev.Code = KeyF1
	case evdevKeyF2:
		ev.Code = KeyF2
	case evdevKeyA:
		ev.Rune = 'a'
	case evdevKeyB:
		ev.Rune = 'b'
	case evdevKeySpace:
		ev.Rune = ' '
	default:
		return KeyEvent{}, false
	}
	return ev, true
}

// evdevRecordSize is the size of struct input_event: a timeval followed by
// u16 type, u16 code and s32 value.
func evdevRecordSize() (tvSize, size int) {
	tvSize = binary.Size(unix.Timeval{})
	return tvSize, tvSize + 2 + 2 + 4
}

// parseEvdev decodes a buffer of input_event records and calls emit for each
// mapped key.
func parseEvdev(buf []byte, tvSize, size int, emit func(KeyEvent)) {
	for off := 0; off+size <= len(buf); off += size {
		rec := buf[off : off+size]
		typ := binary.LittleEndian.Uint16(rec[tvSize : tvSize+2])
		if typ != evKey {
			continue
		}
		code := binary.LittleEndian.Uint16(rec[tvSize+2 : tvSize+4])
		value := int32(binary.LittleEndian.Uint32(rec[tvSize+4 : tvSize+8]))
		if ev, ok := evdevKeyEvent(code, value); ok {
			emit(ev)
		}
	}
}

type evdevWatcher struct {
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// watchEvdev reads every device matching pattern on its own goroutine and
// forwards key events to ch, dropping them if ch is full.
func watchEvdev(pattern string, ch chan<- KeyEvent) (io.Closer, error) {
	paths, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	w := &evdevWatcher{done: make(chan struct{})}
	opened := 0
	for _, p := range paths {
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK, 0)
		if err != nil {
			continue
		}
		opened++
		w.wg.Add(1)
		go w.read(fd, ch)
	}
	if opened == 0 {
		return nil, errors.Errorf("no readable devices match %q", pattern)
	}
	return w, nil
}

func (w *evdevWatcher) read(fd int, ch chan<- KeyEvent) {
	defer w.wg.Done()
	defer unix.Close(fd)

	tvSize, size := evdevRecordSize()
	buf := make([]byte, 64*size)
	emit := func(ev KeyEvent) {
		select {
		case ch <- ev:
		default:
		}
	}

	for {
		select {
		case <-w.done:
			return
		default:
		}

		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(fds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			return
		}
		if fds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		parseEvdev(buf[:n], tvSize, size, emit)
	}
}

func (w *evdevWatcher) Close() error {
	w.once.Do(func() { close(w.done) })
	w.wg.Wait()
	return nil
}
