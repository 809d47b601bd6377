package pointer

import (
	"context"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/gogpu/lively"
)

// Linux evdev event types and codes, from input-event-codes.h.
const (
	evSyn = 0x00
	evKey = 0x01
	evRel = 0x02
	evAbs = 0x03

	relX = 0x00
	relY = 0x01

	synReport  = 0
	synDropped = 3
)

// eventSize is the byte size of struct input_event on 64-bit platforms:
// a 16-byte timeval followed by type, code and value.
const eventSize = 24

// event is one decoded input_event record, timestamp dropped.
type event struct {
	typ   uint16
	code  uint16
	value int32
}

// decodeEvent decodes a single little-endian input_event record.
// b must hold at least eventSize bytes.
func decodeEvent(b []byte) event {
	return event{
		typ:   binary.LittleEndian.Uint16(b[16:18]),
		code:  binary.LittleEndian.Uint16(b[18:20]),
		value: int32(binary.LittleEndian.Uint32(b[20:24])),
	}
}

// relAccumulator batches relative motion between SYN_REPORT markers so a
// single tracker update covers one hardware report. Key presses and
// absolute axes pass through it unchanged and unobserved.
type relAccumulator struct {
	dx, dy float64
}

// feed consumes one event. On a SYN_REPORT boundary it returns the batched
// motion with flush set when there is any. SYN_DROPPED discards the partial
// batch, per the kernel's buffer-overrun contract.
func (a *relAccumulator) feed(ev event) (dx, dy float64, flush bool) {
	switch ev.typ {
	case evRel:
		switch ev.code {
		case relX:
			a.dx += float64(ev.value)
		case relY:
			a.dy += float64(ev.value)
		}
	case evSyn:
		switch ev.code {
		case synReport:
			dx, dy = a.dx, a.dy
			a.dx, a.dy = 0, 0
			return dx, dy, dx != 0 || dy != 0
		case synDropped:
			a.dx, a.dy = 0, 0
		}
	}
	return 0, 0, false
}

// EvdevSource reads relative pointer motion from a Linux evdev character
// device (/dev/input/eventN). The device is opened read-only; buttons and
// absolute axes are ignored.
type EvdevSource struct {
	path string
}

var _ Source = (*EvdevSource)(nil)

// NewEvdevSource creates a source for the given device path. Use Discover
// to find a suitable path automatically.
func NewEvdevSource(path string) *EvdevSource {
	return &EvdevSource{path: path}
}

// String returns the device path prefixed with the source kind.
func (s *EvdevSource) String() string { return "evdev:" + s.path }

// Run opens the device and applies its relative motion to the tracker until
// ctx is done. Cancellation closes the file to unblock the pending read;
// Run then returns nil. Any other read failure ends Run with an error.
func (s *EvdevSource) Run(ctx context.Context, tr *Tracker) error {
	f, err := os.Open(s.path)
	if err != nil {
		return fmt.Errorf("open input device: %w", err)
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		f.Close()
	}()

	lively.Logger().Info("pointer device opened", "device", s.path)

	buf := make([]byte, eventSize*64)
	var acc relAccumulator
	for {
		n, err := f.Read(buf)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("read input device: %w", err)
		}
		for off := 0; off+eventSize <= n; off += eventSize {
			if dx, dy, ok := acc.feed(decodeEvent(buf[off:])); ok {
				tr.Move(dx, dy)
			}
		}
	}
}

// Open resolves a configured device name to a running source. The name
// "auto" (or an empty string) triggers Discover; anything else is used as
// an explicit device path.
func Open(device string) (Source, error) {
	if device == "" || device == "auto" {
		path, err := Discover()
		if err != nil {
			return nil, err
		}
		return NewEvdevSource(path), nil
	}
	return NewEvdevSource(device), nil
}

// Discover scans /dev/input for the first event device that advertises
// relative X and Y axes and can be opened for reading.
func Discover() (string, error) {
	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil {
		return "", fmt.Errorf("scan input devices: %w", err)
	}
	sort.Strings(paths)

	for _, p := range paths {
		if !deviceHasRelXY(p) {
			continue
		}
		// Probe for read permission; wallpaper processes often lack access
		// to some devices and should fall through to the next one.
		fd, err := unix.Open(p, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
		if err != nil {
			lively.Logger().Warn("pointer device not readable", "device", p, "error", err)
			continue
		}
		unix.Close(fd)
		return p, nil
	}
	return "", ErrNoPointerDevice
}

// deviceHasRelXY checks the device's sysfs capability mask for relative
// X/Y support.
func deviceHasRelXY(devPath string) bool {
	name := filepath.Base(devPath)
	capPath := filepath.Join("/sys/class/input", name, "device/capabilities/rel")
	data, err := os.ReadFile(capPath)
	if err != nil {
		return false
	}
	return relMaskHasXY(string(data))
}

// relMaskHasXY parses a sysfs capabilities/rel bitmask: space-separated
// hexadecimal words with the least significant word last. All REL codes fit
// in that final word.
func relMaskHasXY(mask string) bool {
	fields := strings.Fields(mask)
	if len(fields) == 0 {
		return false
	}
	w, err := strconv.ParseUint(fields[len(fields)-1], 16, 64)
	if err != nil {
		return false
	}
	const want = 1<<relX | 1<<relY
	return w&want == want
}
