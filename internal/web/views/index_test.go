package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/Ko-stant/spider-field/internal/protocol"
)

func testSnapshot() protocol.Snapshot {
	return protocol.Snapshot{
		Tick:           1500,
		Status:         "running",
		FieldWidth:     50,
		FieldHeight:    20,
		ClaimedPercent: 12.5,
		ClaimTarget:    75,
		Free: protocol.PolygonLite{
			Vertices: []protocol.PointLite{{X: 0, Y: 0}, {X: 50, Y: 0}, {X: 50, Y: 20}, {X: 0, Y: 20}},
		},
		Spider: protocol.SpiderLite{
			Position: protocol.PointLite{X: 3, Y: 4},
			Trail:    []protocol.PointLite{{X: 3, Y: 0}, {X: 3, Y: 4}},
		},
		Snake: protocol.SnakeLite{Position: protocol.PointLite{X: 10, Y: 10}},
	}
}

func TestIndexPage_Render(t *testing.T) {
	var buf bytes.Buffer
	if err := IndexPage(testSnapshot()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<polygon class="free" points="0,0 500,0 500,200 0,200"/>`,
		`<polyline class="trail" points="30,0 30,40"/>`,
		`<circle class="snake" cx="100" cy="100" r="4"/>`,
		`data-status="running"`,
		"/stream",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("expected page to contain %q", want)
		}
	}
}

func TestIndexPage_EscapesStatus(t *testing.T) {
	snap := testSnapshot()
	snap.Status = `<script>`
	var buf bytes.Buffer
	if err := IndexPage(snap).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(buf.String(), `data-status="<script>"`) {
		t.Errorf("expected status to be escaped")
	}
}

func TestStatusLine_GroupsDigits(t *testing.T) {
	want := "running: 12.5% of 1,000 cells claimed, target 75%, tick 1,500"
	if got := StatusLine(testSnapshot()); got != want {
		t.Errorf("StatusLine = %q, want %q", got, want)
	}
}

func TestFieldSVG_OmitsShortTrail(t *testing.T) {
	snap := testSnapshot()
	snap.Spider.Trail = nil
	if strings.Contains(FieldSVG(snap), "trail") {
		t.Errorf("expected no trail without a trail")
	}
}

func TestIndexPage_StatusAndScript(t *testing.T) {
	var buf bytes.Buffer
	if err := IndexPage(testSnapshot()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("Render: %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, `data-status="running">running: 12.5% of 1,000 cells claimed, target 75%, tick 1,500</p>`) {
		t.Errorf("expected the status line inside the status paragraph")
	}
	if !strings.Contains(html, `fetch("/api/snapshot?format=svg")`) {
		t.Errorf("expected the page script to be emitted verbatim")
	}
}
