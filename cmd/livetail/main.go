package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/hubenschmidt/hotel-voice-console/internal/console"
	"github.com/hubenschmidt/hotel-voice-console/internal/hotel"
)

func main() {
	url := flag.String("url", "ws://localhost:8000/ws/live", "console live feed URL")
	count := flag.Int("count", 0, "snapshots to read per client (0 = until timeout)")
	timeout := flag.Duration("timeout", 30*time.Second, "how long to stay connected")
	clients := flag.Int("clients", 1, "concurrent clients; more than one prints a summary instead of snapshots")
	flag.Parse()

	if *clients <= 1 {
		res := tail(*url, *count, *timeout, printSnapshot)
		if res.err != "" {
			fmt.Fprintln(os.Stderr, res.err)
			os.Exit(1)
		}
		return
	}

	var mu sync.Mutex
	var results []tailResult
	var wg sync.WaitGroup
	for range *clients {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := tail(*url, *count, *timeout, nil)
			mu.Lock()
			results = append(results, r)
			mu.Unlock()
		}()
	}
	wg.Wait()
	printSummary(results)
}

type tailResult struct {
	frames  int
	firstMs float64
	err     string
}

// tail reads snapshots until count frames arrive or the deadline passes.
func tail(url string, count int, timeout time.Duration, onFrame func(console.Snapshot)) tailResult {
	start := time.Now()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		if resp != nil {
			return tailResult{err: fmt.Sprintf("dial: %v (%s)", err, resp.Status)}
		}
		return tailResult{err: fmt.Sprintf("dial: %v", err)}
	}
	defer conn.Close()

	var res tailResult
	deadline := start.Add(timeout)
	for count <= 0 || res.frames < count {
		conn.SetReadDeadline(deadline)
		_, data, err := conn.ReadMessage()
		if err != nil {
			if time.Now().Before(deadline) {
				res.err = fmt.Sprintf("read: %v", err)
			}
			break
		}
		var snap console.Snapshot
		if err = json.Unmarshal(data, &snap); err != nil {
			continue
		}
		if res.frames == 0 {
			res.firstMs = float64(time.Since(start).Microseconds()) / 1000
		}
		res.frames++
		if onFrame != nil {
			onFrame(snap)
		}
	}

	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	return res
}

func printSnapshot(s console.Snapshot) {
	fmt.Printf("%s  %s  %d active\n", s.Time.Format("15:04:05"), s.Status, len(s.ActiveCalls))
	for _, c := range s.ActiveCalls {
		fmt.Printf("  %-16s %-14s %-24s %6s\n", c.CallerName, c.Status.Label(), c.Intent, hotel.FormatDuration(c.Duration))
	}
}

func printSummary(results []tailResult) {
	var ok, failed, frames int
	var first []float64
	errs := map[string]int{}
	for _, r := range results {
		frames += r.frames
		if r.err != "" {
			failed++
			errs[r.err]++
			continue
		}
		ok++
		first = append(first, r.firstMs)
	}

	fmt.Printf("Clients: %d ok, %d failed | Frames: %d\n", ok, failed, frames)
	if len(first) > 0 {
		sort.Float64s(first)
		fmt.Printf("First frame ms: p50=%.1f p95=%.1f max=%.1f\n",
			percentile(first, 50), percentile(first, 95), first[len(first)-1])
	}
	if len(errs) > 0 {
		lines := make([]string, 0, len(errs))
		for e, n := range errs {
			lines = append(lines, fmt.Sprintf("  %dx %s", n, e))
		}
		sort.Strings(lines)
		fmt.Println("Errors:\n" + strings.Join(lines, "\n"))
	}
}

func percentile(sorted []float64, p float64) float64 {
	idx := int(float64(len(sorted)-1) * p / 100)
	return sorted[idx]
}
