// Package recording loads recorded touch event streams and replays them
// through a conditioning pipeline the way a touch handler would.
package recording

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	conditioner "github.com/tphakala/go-touch-conditioner"
)

// ErrEmpty is returned when a recording would have no events.
var ErrEmpty = errors.New("recording: no events")

// Action is the kind of a touch event.
type Action string

// Touch actions.
const (
	ActionDown Action = "down"
	ActionMove Action = "move"
	ActionUp   Action = "up"
)

// Event is one recorded touch event.
type Event struct {
	Action   Action  `yaml:"action" json:"action"`
	X        float64 `yaml:"x" json:"x"`
	Y        float64 `yaml:"y" json:"y"`
	VX       float64 `yaml:"vx" json:"vx"`
	VY       float64 `yaml:"vy" json:"vy"`
	Size     float64 `yaml:"size" json:"size"`
	Pressure float64 `yaml:"pressure" json:"pressure"`
}

// Raw converts e to a raw sample.
func (e Event) Raw() conditioner.RawSample {
	return conditioner.Raw(e.X, e.Y, e.VX, e.VY, e.Size, e.Pressure)
}

// Recording is an ordered touch event stream.
type Recording struct {
	Events []Event `yaml:"events" json:"events"`
}

// Load reads a recording from a YAML or JSON file.
func Load(path string) (*Recording, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("recording: read file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a recording. JSON input is accepted since it is valid YAML.
func Parse(data []byte) (*Recording, error) {
	var rec Recording
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("recording: parse: %w", err)
	}
	if err := rec.Validate(); err != nil {
		return nil, fmt.Errorf("recording: %w", err)
	}
	return &rec, nil
}

// Save writes rec to path as YAML.
func (r *Recording) Save(path string) error {
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("recording: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("recording: write file: %w", err)
	}
	return nil
}

// Validate checks that every event has a known action.
// Sample values are not checked here; the pipeline rejects bad samples on replay.
func (r *Recording) Validate() error {
	for i, e := range r.Events {
		switch e.Action {
		case ActionDown, ActionMove, ActionUp:
		default:
			return fmt.Errorf("events[%d]: unknown action %q", i, e.Action)
		}
	}
	return nil
}

// Strokes splits the recording into raw sample strokes at every down event.
// Move events before the first down belong to the first stroke.
func (r *Recording) Strokes() [][]conditioner.RawSample {
	var (
		strokes [][]conditioner.RawSample
		cur     []conditioner.RawSample
	)
	for _, e := range r.Events {
		if e.Action == ActionDown && len(cur) > 0 {
			strokes = append(strokes, cur)
			cur = nil
		}
		cur = append(cur, e.Raw())
		if e.Action == ActionUp {
			strokes = append(strokes, cur)
			cur = nil
		}
	}
	if len(cur) > 0 {
		strokes = append(strokes, cur)
	}
	return strokes
}

// ReplayResult summarizes a replay.
type ReplayResult struct {
	Events   int
	Strokes  int
	Rejected int
}

// Replay drives p with the events of rec:
//
//   - down ends any open stroke, then ingests the sample
//   - move ingests the sample
//   - up marks the stroke ending, ingests the sample and ends the stroke
//
// Samples the pipeline rejects are counted and skipped. Any other error stops
// the replay.
func Replay(p *conditioner.Pipeline, rec *Recording) (ReplayResult, error) {
	var res ReplayResult
	log := conditioner.Logger()

	for i, e := range rec.Events {
		switch e.Action {
		case ActionDown:
			if !p.HasEnded() {
				p.MarkEnded()
			}
			res.Strokes++
		case ActionUp:
			p.MarkEnding()
		case ActionMove:
		default:
			return res, fmt.Errorf("recording: events[%d]: unknown action %q", i, e.Action)
		}

		err := p.Ingest(e.Raw())
		switch {
		case err == nil:
		case conditioner.IsRejection(err):
			res.Rejected++
			log.Debug("recording: sample skipped", "event", i, "err", err)
		default:
			return res, fmt.Errorf("recording: events[%d]: %w", i, err)
		}

		if e.Action == ActionUp {
			p.MarkEnded()
		}
		res.Events++
	}

	return res, nil
}
