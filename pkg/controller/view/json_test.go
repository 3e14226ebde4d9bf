package view_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/m-mizutani/recent/pkg/controller/view"
	"github.com/m-mizutani/recent/pkg/domain/model"
)

func TestJSON_Render(t *testing.T) {
	presenter := view.NewJSON(
		view.WithClock(func() time.Time { return now }),
		view.WithLocation(time.UTC),
	)

	var buf bytes.Buffer
	gt.NoError(t, presenter.Render(context.Background(), &buf, testListing()))

	var got []map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	gt.Array(t, got).Length(2)

	gt.Value(t, got[0]["name"]).Equal("main.go")
	gt.Value(t, got[0]["path"]).Equal("/tmp/project/main.go")
	gt.Value(t, got[0]["kind"]).Equal("file")
	gt.Value(t, got[0]["modified"]).Equal("2024-03-01T11:57:00Z")
	gt.Value(t, got[0]["relative"]).Equal("3 minutes ago")
	gt.Value(t, got[0]["size"]).Equal(float64(120))
	gt.Value(t, got[1]["kind"]).Equal("directory")
}

func TestJSON_Render_EmptyListing(t *testing.T) {
	var buf bytes.Buffer
	gt.NoError(t, view.NewJSON().Render(context.Background(), &buf, &model.Listing{}))
	gt.Value(t, buf.String()).Equal("[]\n")
}
