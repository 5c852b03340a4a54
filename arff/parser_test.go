package arff

import (
	"strings"
	"testing"
)

const weatherDataset = `% The weather dataset
@RELATION weather
@ATTRIBUTE outlook {sunny,overcast,rainy}
@ATTRIBUTE temperature NUMERIC
@DATA
sunny,85.0
overcast,83.0
rainy,?
`

// eventSink records event order for assertions.
type eventSink struct {
	Collector
	events []string
}

func (s *eventSink) FormatComment(text string) error {
	s.events = append(s.events, "comment")
	return s.Collector.FormatComment(text)
}

func (s *eventSink) FormatCreate(relation string, attrs []*Attribute) error {
	s.events = append(s.events, "create")
	return s.Collector.FormatCreate(relation, attrs)
}

func (s *eventSink) FormatInstance(relation string, inst *Instance) error {
	s.events = append(s.events, "instance")
	return s.Collector.FormatInstance(relation, inst)
}

func TestParseWeather(t *testing.T) {
	sink := &eventSink{}
	if err := Parse(strings.NewReader(weatherDataset), sink, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if sink.Relation != "weather" {
		t.Errorf("got relation %q, want weather", sink.Relation)
	}
	if len(sink.Attributes) != 2 {
		t.Fatalf("got %d attributes, want 2", len(sink.Attributes))
	}
	if len(sink.Instances) != 3 {
		t.Errorf("got %d instances, want 3", len(sink.Instances))
	}
	if len(sink.Header) != 1 || sink.Header[0] != " The weather dataset" {
		t.Errorf("unexpected header: %v", sink.Header)
	}

	// Create fires exactly once, after comments and before any instance.
	creates := 0
	sawInstance := false
	for _, e := range sink.events {
		switch e {
		case "create":
			creates++
			if sawInstance {
				t.Error("create event after an instance event")
			}
		case "instance":
			sawInstance = true
		}
	}
	if creates != 1 {
		t.Errorf("got %d create events, want 1", creates)
	}

	if !sink.Instances[2].Fields[1].Missing() {
		t.Error("expected missing temperature in last row")
	}
}

func TestParseCaseInsensitiveKeywords(t *testing.T) {
	input := "@relation w\n@attribute a numeric\n@data\n1.5\n"
	sink := &Collector{}
	if err := Parse(strings.NewReader(input), sink, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if sink.Relation != "w" || len(sink.Attributes) != 1 || len(sink.Instances) != 1 {
		t.Errorf("lowercase keywords not handled: %+v", sink)
	}
}

func TestParseUnexpectedLineBeforeData(t *testing.T) {
	input := "@RELATION w\nthis is not a declaration\n@ATTRIBUTE a NUMERIC\n@DATA\n1.0\n"
	sink := &Collector{}
	if err := Parse(strings.NewReader(input), sink, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sink.Instances) != 1 {
		t.Errorf("stray header line aborted parsing: got %d instances, want 1", len(sink.Instances))
	}
}

func TestParseBadDeclarationSkipped(t *testing.T) {
	input := "@RELATION w\n@ATTRIBUTE broken\n@ATTRIBUTE a NUMERIC\n@DATA\n2.5\n"
	sink := &Collector{}
	if err := Parse(strings.NewReader(input), sink, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sink.Attributes) != 1 {
		t.Errorf("got %d attributes, want 1 (broken declaration skipped)", len(sink.Attributes))
	}
	if len(sink.Instances) != 1 {
		t.Errorf("got %d instances, want 1", len(sink.Instances))
	}
}

func TestParseAttributeAfterDataIgnored(t *testing.T) {
	input := "@RELATION w\n@ATTRIBUTE a NUMERIC\n@DATA\n1.0\n@ATTRIBUTE b NUMERIC\n2.0\n"
	sink := &Collector{}
	if err := Parse(strings.NewReader(input), sink, nil); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(sink.Attributes) != 1 {
		t.Errorf("attribute added after @DATA: got %d, want 1", len(sink.Attributes))
	}
	if len(sink.Instances) != 2 {
		t.Errorf("got %d instances, want 2", len(sink.Instances))
	}
}
