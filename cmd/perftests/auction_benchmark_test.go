package perftests

import (
	"fmt"
	"math/rand"
	"sync/atomic"
	"testing"
	"time"

	auction "auction-house/internal/auctionService"
	model "auction-house/internal/models"
	repository "auction-house/internal/repository"
)

// setupAuction seeds bidders, one owner, a minimal catalog and numRooms
// open rooms directly into an in-memory repo.
func setupAuction(b *testing.B, numRooms, numBidders int) (*auction.AuctionService, []string, []string) {
	b.Helper()

	repo := repository.NewMemoryRepo()
	svc := auction.NewAuctionService(repo)
	now := time.Now().UTC()

	if err := repo.CreateUser(model.User{UserID: "owner", Name: "Owner", Email: "owner@bench.test", CreatedAt: now}); err != nil {
		b.Fatalf("failed to seed owner: %v", err)
	}
	if err := repo.CreateBrand(model.Brand{BrandID: "brand", Name: "Benchmark Brand", CreatedAt: now}); err != nil {
		b.Fatalf("failed to seed brand: %v", err)
	}
	if err := repo.CreateModel(model.Model{ModelID: "model", Name: "Benchmark Model", BrandID: "brand", CreatedAt: now}); err != nil {
		b.Fatalf("failed to seed model: %v", err)
	}

	bidders := make([]string, numBidders)
	for i := range bidders {
		id := fmt.Sprintf("bidder_%d", i)
		if err := repo.CreateUser(model.User{UserID: id, Name: id, Email: id + "@bench.test", CreatedAt: now}); err != nil {
			b.Fatalf("failed to seed bidder: %v", err)
		}
		bidders[i] = id
	}

	rooms := make([]string, numRooms)
	for i := range rooms {
		productID := fmt.Sprintf("prod_%d", i)
		roomID := fmt.Sprintf("room_%d", i)
		err := repo.CreateProductWithRoom(
			model.Product{ProductID: productID, Price: 100, ModelID: "model", OwnerID: "owner", CreatedAt: now},
			model.Room{RoomID: roomID, ProductID: productID, End: now.Add(time.Hour), CreatedAt: now},
		)
		if err != nil {
			b.Fatalf("failed to seed room: %v", err)
		}
		rooms[i] = roomID
	}
	return svc, rooms, bidders
}

// Benchmark 1: PlaceBid - Isolated Rooms (Low Contention - Micro Benchmark)
func Benchmark_PlaceBid_Isolated(b *testing.B) {
	svc, rooms, bidders := setupAuction(b, b.N, 1)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		amount := float64(100 + rand.Intn(100))
		if _, err := svc.PlaceBid(rooms[i], bidders[0], amount); err != nil {
			b.Fatalf("failed to place bid: %v", err)
		}
	}
}

// Benchmark 2: PlaceBid - Shared Room (High Contention - Concurrency Benchmark)
func Benchmark_PlaceBid_ConcurrentSharedRoom(b *testing.B) {
	svc, rooms, bidders := setupAuction(b, 1, 256)

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 100

	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			bidder := bidders[rnd.Intn(len(bidders))]
			nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
			_, _ = svc.PlaceBid(rooms[0], bidder, float64(nextBid))
		}
	})
}

// Benchmark 3: WinningBid - Concurrent readers against one hot room
func Benchmark_WinningBid_ConcurrentSharedRoom(b *testing.B) {
	svc, rooms, bidders := setupAuction(b, 1, 100)

	for j := 0; j < 100; j++ {
		if _, err := svc.PlaceBid(rooms[0], bidders[j], float64(101+j)); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.WinningBid(rooms[0]); err != nil {
				b.Fatalf("failed to get winning bid: %v", err)
			}
		}
	})
}

// Benchmark 4: Mixed Workload (Readers + Writers concurrently)
func Benchmark_MixedWorkload_SharedRoom(b *testing.B) {
	svc, rooms, bidders := setupAuction(b, 1, 256)

	for j := 0; j < 50; j++ {
		if _, err := svc.PlaceBid(rooms[0], bidders[j], float64(101+j*2)); err != nil {
			b.Fatalf("failed to seed bid: %v", err)
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	var lastBid int64 = 250

	// Ratio: 70% readers, 30% writers
	b.RunParallel(func(pb *testing.PB) {
		rnd := rand.New(rand.NewSource(time.Now().UnixNano()))
		for pb.Next() {
			if rnd.Intn(10) < 3 {
				bidder := bidders[rnd.Intn(len(bidders))]
				nextBid := atomic.AddInt64(&lastBid, int64(rnd.Intn(5)+1))
				_, _ = svc.PlaceBid(rooms[0], bidder, float64(nextBid))
			} else {
				_, _ = svc.WinningBid(rooms[0])
			}
		}
	})
}
