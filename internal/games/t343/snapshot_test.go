package t343

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestEncodeSnapshotUsesNullForEmpty(t *testing.T) {
	g := gameFrom(t, 3, 7, Grid{{3, 0}, {0, 27}}, StatusKeepPlaying)

	data, err := EncodeSnapshot(g.Snapshot())
	if err != nil {
		t.Fatalf("EncodeSnapshot() error = %v", err)
	}
	text := string(data)
	for _, want := range []string{`null`, `"status": "KEEP_PLAYING"`, `"initial_value": 3`, `"win_condition": 7`, `"size": 2`} {
		if !strings.Contains(text, want) {
			t.Errorf("encoded snapshot missing %s:\n%s", want, text)
		}
	}

	decoded, err := DecodeSnapshot(data)
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if !reflect.DeepEqual(decoded, g.Snapshot()) {
		t.Errorf("decoded = %+v, want %+v", decoded, g.Snapshot())
	}
}

func TestDecodeSnapshotNormalizesStatus(t *testing.T) {
	data := `{"board": [[null, 3], [9, null]], "score": 12, "status": "won", "size": 2, "initial_value": 3, "win_condition": 2}`

	s, err := DecodeSnapshot([]byte(data))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if s.Status != StatusWon {
		t.Errorf("Status = %s, want WON", s.Status)
	}
	if !reflect.DeepEqual(s.Board, Grid{{0, 3}, {9, 0}}) {
		t.Errorf("Board = %v", s.Board)
	}
}

func TestDecodeSnapshotTrimsStatus(t *testing.T) {
	data := `{"board": [[3]], "score": 0, "status": " playing ", "size": 1, "initial_value": 3, "win_condition": 2}`

	s, err := DecodeSnapshot([]byte(data))
	if err != nil {
		t.Fatalf("DecodeSnapshot() error = %v", err)
	}
	if s.Status != StatusPlaying {
		t.Errorf("Status = %q, want PLAYING", s.Status)
	}
}

func TestDecodeSnapshotRejectsMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"board": `},
		{"unknown status", `{"board": [[3]], "score": 0, "status": "PAUSED", "size": 1, "initial_value": 3, "win_condition": 2}`},
		{"negative score", `{"board": [[3]], "score": -3, "status": "PLAYING", "size": 1, "initial_value": 3, "win_condition": 2}`},
		{"row count", `{"board": [[3]], "score": 0, "status": "PLAYING", "size": 2, "initial_value": 3, "win_condition": 2}`},
		{"row length", `{"board": [[3, null], [3]], "score": 0, "status": "PLAYING", "size": 2, "initial_value": 3, "win_condition": 2}`},
		{"not a power", `{"board": [[5]], "score": 0, "status": "PLAYING", "size": 1, "initial_value": 3, "win_condition": 2}`},
		{"below base", `{"board": [[1]], "score": 0, "status": "PLAYING", "size": 1, "initial_value": 3, "win_condition": 2}`},
		{"missing fields", `{"board": [[3]]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodeSnapshot([]byte(tt.data)); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("DecodeSnapshot() error = %v, want ErrInvalidSnapshot", err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"playing", "LOST", "Won", " keep_playing "} {
		if _, err := ParseStatus(s); err != nil {
			t.Errorf("ParseStatus(%q) error = %v", s, err)
		}
	}
	if _, err := ParseStatus("over"); err == nil {
		t.Error("ParseStatus(over) should fail")
	}
}
