package analytics_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formctl/pkg/analytics"
	"github.com/goliatone/go-formctl/pkg/model"
)

func record() model.Record {
	rec := model.NewRecord("2025-03-01T10:00:00.000Z")
	rec.SetString("nombre_completo", "Ana Ruiz")
	rec.SetList("plataformas", []string{"meta_ads"})
	return rec
}

func TestSinkPushesFormSubmitEvent(t *testing.T) {
	q := analytics.NewQueue()
	sink := analytics.NewSink("gestor_trafego_latam", analytics.WithPusher(q))

	if !sink.Send(record()) {
		t.Fatalf("send failed")
	}

	events := q.Snapshot()
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	ev := events[0]
	if ev.PushedAt.IsZero() {
		t.Fatalf("PushedAt not stamped")
	}

	got, err := json.Marshal(ev)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"event":"form_submit","form_name":"gestor_trafego_latam","form_data":{"timestamp":"2025-03-01T10:00:00.000Z","nombre_completo":"Ana Ruiz","plataformas":["meta_ads"]}}`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Fatalf("event mismatch (-want +got):\n%s", diff)
	}
}

type failingPusher struct{ panic bool }

func (f failingPusher) Push(analytics.Event) error {
	if f.panic {
		panic("boom")
	}
	return errors.New("nope")
}

func TestSinkFailuresBecomeFalse(t *testing.T) {
	for name, p := range map[string]analytics.Pusher{
		"error": failingPusher{},
		"panic": failingPusher{panic: true},
	} {
		t.Run(name, func(t *testing.T) {
			if analytics.NewSink("f", analytics.WithPusher(p)).Send(record()) {
				t.Fatalf("expected failure")
			}
		})
	}

	q := analytics.NewQueue()
	q.Close()
	if analytics.NewSink("f", analytics.WithPusher(q)).Send(record()) {
		t.Fatalf("closed queue accepted an event")
	}
}

func TestDataLayerIsLazySingleton(t *testing.T) {
	var wg sync.WaitGroup
	queues := make([]*analytics.Queue, 8)
	for i := range queues {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			queues[i] = analytics.DataLayer()
		}(i)
	}
	wg.Wait()
	for _, q := range queues {
		if q != queues[0] {
			t.Fatalf("DataLayer returned different queues")
		}
	}

	before := analytics.DataLayer().Len()
	if !analytics.NewSink("f").Send(record()) {
		t.Fatalf("send to default queue failed")
	}
	if got := analytics.DataLayer().Len(); got != before+1 {
		t.Fatalf("default queue length = %d, want %d", got, before+1)
	}
}

func TestQueueDrainPreservesOrder(t *testing.T) {
	q := analytics.NewQueue()
	for _, name := range []string{"a", "b", "c"} {
		if err := q.Push(analytics.NewEvent(name, record())); err != nil {
			t.Fatal(err)
		}
	}

	drained := q.Drain()
	var names []string
	for _, ev := range drained {
		names = append(names, ev.FormName)
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, names); diff != "" {
		t.Fatalf("drain order mismatch (-want +got):\n%s", diff)
	}
	if q.Len() != 0 {
		t.Fatalf("queue not empty after drain")
	}
}

func TestTeeWritesNDJSON(t *testing.T) {
	var buf bytes.Buffer
	q := analytics.NewQueue()
	sink := analytics.NewSink("f", analytics.WithPusher(analytics.Tee{q, analytics.NewNDJSONWriter(&buf)}))

	if !sink.Send(record()) || !sink.Send(record()) {
		t.Fatalf("send failed")
	}
	if q.Len() != 2 {
		t.Fatalf("queue length = %d", q.Len())
	}
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	var ev struct {
		Event    string         `json:"event"`
		FormData map[string]any `json:"form_data"`
	}
	if err := json.Unmarshal(lines[0], &ev); err != nil {
		t.Fatalf("unmarshal line: %v", err)
	}
	if ev.Event != analytics.EventFormSubmit || ev.FormData["nombre_completo"] != "Ana Ruiz" {
		t.Fatalf("unexpected line %s", lines[0])
	}
}

func TestTeeAttemptsEveryPusher(t *testing.T) {
	q := analytics.NewQueue()
	err := analytics.Tee{failingPusher{}, q}.Push(analytics.NewEvent("f", record()))
	if err == nil {
		t.Fatalf("expected first error")
	}
	if q.Len() != 1 {
		t.Fatalf("second pusher not attempted")
	}
}
