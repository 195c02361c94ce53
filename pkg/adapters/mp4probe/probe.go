// Package mp4probe reads video metadata from MP4 containers.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/menuvideo/pkg/ports"
)

// ErrNoVideoTrack is returned when the container holds no video track.
var ErrNoVideoTrack = errors.New("no video track found")

// Prober implements ports.VideoProber using mp4ff.
type Prober struct{}

// New creates a new Prober.
func New() *Prober {
	return &Prober{}
}

// Probe reads the first video track of the MP4 file at path.
func (p *Prober) Probe(path string) (ports.VideoInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return ProbeReader(f)
}

// ProbeReader reads the first video track from an MP4 stream.
func ProbeReader(r io.ReadSeeker) (ports.VideoInfo, error) {
	mp4File, err := mp4.DecodeFile(r)
	if err != nil {
		return ports.VideoInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.VideoInfo{}, ErrNoVideoTrack
	}

	for _, trak := range moov.Traks {
		info, ok := videoTrackInfo(trak)
		if !ok {
			continue
		}
		if info.Duration == 0 && moov.Mvhd != nil && moov.Mvhd.Timescale > 0 {
			info.Duration = ticksToDuration(moov.Mvhd.Duration, moov.Mvhd.Timescale)
		}
		return info, nil
	}

	return ports.VideoInfo{}, ErrNoVideoTrack
}

func videoTrackInfo(trak *mp4.TrakBox) (ports.VideoInfo, bool) {
	if trak.Mdia == nil || trak.Mdia.Hdlr == nil || trak.Mdia.Hdlr.HandlerType != "vide" {
		return ports.VideoInfo{}, false
	}

	info := ports.VideoInfo{Codec: "unknown"}

	if mdhd := trak.Mdia.Mdhd; mdhd != nil && mdhd.Timescale > 0 {
		info.Duration = ticksToDuration(mdhd.Duration, mdhd.Timescale)
	}
	if trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}

	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsd == nil {
		return info, true
	}
	for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
		info.Codec = codecName(child.Type())
		if vse, ok := child.(*mp4.VisualSampleEntryBox); ok && vse.Width > 0 {
			info.Width = int(vse.Width)
			info.Height = int(vse.Height)
		}
		break
	}
	return info, true
}

func codecName(fourcc string) string {
	switch fourcc {
	case "avc1", "avc3":
		return "h264"
	case "hvc1", "hev1":
		return "hevc"
	case "av01":
		return "av1"
	case "vp08":
		return "vp8"
	case "vp09":
		return "vp9"
	default:
		return fourcc
	}
}

func ticksToDuration(ticks uint64, timescale uint32) time.Duration {
	sec := ticks / uint64(timescale)
	rem := ticks % uint64(timescale)
	return time.Duration(sec)*time.Second + time.Duration(rem)*time.Second/time.Duration(timescale)
}

var _ ports.VideoProber = (*Prober)(nil)
