package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hexhaven/hexhaven/internal/client"
	"github.com/hexhaven/hexhaven/internal/config"
	"github.com/hexhaven/hexhaven/internal/game"
	"github.com/hexhaven/hexhaven/internal/journal"
	"github.com/hexhaven/hexhaven/internal/logger"
	"github.com/hexhaven/hexhaven/internal/network"
	"github.com/hexhaven/hexhaven/internal/protocol"
	"github.com/hexhaven/hexhaven/internal/uievent"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to config file")
	flag.Parse()

	// .env entries override nothing that is already set in the environment.
	_ = godotenv.Load()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Printf("config load failed, using defaults: %v", err)
		cfg = config.Default()
	}
	if url := os.Getenv("HEXHAVEN_SERVER_URL"); url != "" {
		cfg.Server.URL = url
	}
	if nick := os.Getenv("HEXHAVEN_NICKNAME"); nick != "" {
		cfg.Player.Nickname = nick
	}

	if err := logger.Init(); err != nil {
		log.Fatalf("logger init failed: %v", err)
	}
	defer logger.Close()

	var jrnl *journal.Journal
	if cfg.Journal.Enabled {
		jrnl, err = journal.New(cfg.Journal.Addr)
		if err != nil {
			log.Printf("journaling disabled: %v", err)
		} else {
			defer jrnl.Close()
			log.Printf("journaling wire traffic under %s", jrnl.Key())
		}
	}

	session := client.NewSession(cfg.Player.Nickname)
	session.SetLastFaceID(cfg.Player.FaceID)
	session.Lobby = &consoleLobby{}
	session.ListenerFactory = func(g *game.Game) client.Listener {
		return uievent.NewQueue(&consoleGame{name: g.Name()})
	}

	conn := network.NewConn(cfg.Server.URL, jrnl)
	dispatcher := client.NewDispatcher(session, &network.Router{Remote: conn})
	dispatcher.SetNegotiationTimeout(cfg.Server.NegotiationTimeoutDuration())

	conn.OnLine = func(line string) {
		dispatcher.Handle(protocol.Decode(line), false)
	}
	conn.OnError = func(err error) {
		logger.LogError("connection error: %v", err)
	}
	conn.OnClose = func() {
		log.Println("disconnected from server")
	}

	if err := conn.Connect(); err != nil {
		log.Fatalf("connect %s: %v", cfg.Server.URL, err)
	}
	defer conn.Close()
	log.Printf("connected to %s as %q, log at %s", cfg.Server.URL, cfg.Player.Nickname, logger.GetLogPath())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
}
