package perftests

import (
	"math/rand"
	"sync/atomic"
	"testing"
	"time"
)

// LoadScenario defines configurable benchmark parameters
type LoadScenario struct {
	Name            string
	NumBidders      int
	NumRooms        int
	ReadRatio       int // out of 10
	MaxBidIncrement int
}

// Benchmark_Load_AuctionHouse runs multiple contention scenarios
func Benchmark_Load_AuctionHouse(b *testing.B) {
	scenarios := []LoadScenario{
		{"Low-Contention-WriteHeavy", 200, 200, 0, 50},
		{"High-Contention-WriteHeavy", 500, 10, 0, 20},
		{"Mixed-Workload", 300, 50, 7, 30},
		{"ReadHeavy", 200, 50, 9, 20},
		{"Edge-Case-SingleRoom", 100, 1, 5, 10},
	}

	for _, s := range scenarios {
		b.Run(s.Name, func(b *testing.B) {
			runParallelScenario(b, s)
		})
	}
}

func runParallelScenario(b *testing.B, s LoadScenario) {
	b.ReportAllocs()

	svc, rooms, bidders := setupAuction(b, s.NumRooms, s.NumBidders)

	var totalOps, successfulBids, failedBids, totalReads int64
	// Bids race on shared rooms, so the amount counter keeps them climbing.
	var lastBid int64 = 100

	start := time.Now()

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano() + int64(time.Now().Nanosecond())))

		for pb.Next() {
			roomID := rooms[rnd.Intn(len(rooms))]

			if rnd.Intn(10) < s.ReadRatio {
				_, _ = svc.WinningBid(roomID)
				atomic.AddInt64(&totalReads, 1)
			} else {
				bidder := bidders[rnd.Intn(len(bidders))]
				amount := atomic.AddInt64(&lastBid, int64(rnd.Intn(s.MaxBidIncrement)+1))
				if _, err := svc.PlaceBid(roomID, bidder, float64(amount)); err != nil {
					atomic.AddInt64(&failedBids, 1)
				} else {
					atomic.AddInt64(&successfulBids, 1)
				}
			}
			atomic.AddInt64(&totalOps, 1)
		}
	})

	elapsed := time.Since(start)
	throughput := float64(totalOps) / elapsed.Seconds()

	b.Logf(
		"Scenario: %s | Rooms: %d | Total Ops: %d | Success Bids: %d | Failed Bids: %d | Reads: %d | Elapsed: %s | Throughput: %.2f ops/sec",
		s.Name, s.NumRooms, totalOps, successfulBids, failedBids, totalReads, elapsed, throughput,
	)
}
