package main

import (
	"os"

	"github.com/guillemguerrero/povlist/internal/config"
	"github.com/guillemguerrero/povlist/internal/maxscan"
	"github.com/guillemguerrero/povlist/pkg/alloc"
	"github.com/guillemguerrero/povlist/pkg/sortedlist"
)

func main() {
	cfg, log := config.FromEnv("sortedmax")
	tracker := alloc.NewTracker(cfg.MaxNodes)

	r := &maxscan.Runner{Log: log, Out: os.Stdout}
	r.Run(os.Args[1:], func() maxscan.Container {
		l := sortedlist.NewWithAllocator(tracker)
		return maxscan.Container{List: l, Insert: l.SortedAdd}
	})

	log.Debug().Int64("live", tracker.Live()).Int64("allocated", tracker.Total()).Msg("nodes")
}
