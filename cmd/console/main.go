// Command console runs the front desk in a terminal over a CSV inventory.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/Domenick1991/hotelconcierge/internal/domain"
	"github.com/Domenick1991/hotelconcierge/internal/logger"
	"github.com/Domenick1991/hotelconcierge/internal/repository"
	"github.com/Domenick1991/hotelconcierge/internal/service/booking"
	"github.com/Domenick1991/hotelconcierge/internal/service/concierge"
	"go.uber.org/zap"
)

const (
	greeting = "Welcome to our hotel! I'm your AI receptionist. How may I assist you today?"
	farewell = "Thank you for choosing our hotel. Have a great day!"
)

func main() {
	source := flag.String("rooms", "hotel_rooms.csv", "room inventory CSV")
	level := flag.String("log-level", "warn", "log level")
	flag.Parse()

	zl, err := logger.New(*level, "development")
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	inventory, err := repository.LoadRoomsFile(*source)
	if err != nil {
		log.Fatalf("Error initializing the system: %v", err)
	}
	repo, err := repository.NewMemoryRoomRepository(inventory)
	if err != nil {
		log.Fatalf("Error initializing the system: %v", err)
	}

	desk := concierge.NewConcierge(repo, booking.NewBookingService(repo))
	run(context.Background(), desk, os.Stdin, os.Stdout)
}

func run(ctx context.Context, desk *concierge.Concierge, in io.Reader, out io.Writer) {
	fmt.Fprintf(out, "AI: %s\n", greeting)

	session := domain.Session{ID: "console"}
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "Guest: ")
		if !scanner.Scan() {
			return
		}
		text := strings.TrimSpace(scanner.Text())
		switch strings.ToLower(text) {
		case "exit", "bye", "goodbye":
			fmt.Fprintf(out, "AI: %s\n", farewell)
			return
		}

		var resp domain.Response
		session, resp = desk.ProcessUtterance(ctx, session, text)
		fmt.Fprintf(out, "AI: %s\n", resp.Message)
	}
}
