package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
)

type StatusResponse struct {
	Settings    GameSettingsDTO `json:"settings"`
	Config      Config          `json:"config"`
	Board       [][]cellDTO     `json:"board"`
	BoardSize   int             `json:"board_size"`
	NextPlayer  int             `json:"next_player"`
	Status      string          `json:"status"`
	Finished    bool            `json:"finished"`
	Winner      int             `json:"winner"`
	PlayerOne   playerStateDTO  `json:"player_one"`
	PlayerTwo   playerStateDTO  `json:"player_two"`
	LegalMoves  []Position      `json:"legal_moves"`
	UndoAllowed bool            `json:"undo_allowed"`
	History     []moveRecordDTO `json:"history"`
}

type GameSettingsDTO struct {
	Mode              string `json:"mode"`
	HumanPlayer       int    `json:"human_player"`
	PlayerOneStrategy string `json:"player_one_strategy,omitempty"`
	PlayerTwoStrategy string `json:"player_two_strategy,omitempty"`
	VolatileSupply    int    `json:"volatile_supply"`
	ImmutableSupply   int    `json:"immutable_supply"`
	AllowUndo         bool   `json:"allow_undo"`
}

type cellDTO struct {
	Owner int    `json:"owner"`
	Kind  string `json:"kind,omitempty"`
}

type playerStateDTO struct {
	VolatileLeft  int `json:"volatile_left"`
	ImmutableLeft int `json:"immutable_left"`
	Wins          int `json:"wins"`
	PieceCount    int `json:"piece_count"`
}

type moveRecordDTO struct {
	Row         int        `json:"row"`
	Col         int        `json:"col"`
	Player      int        `json:"player"`
	Kind        string     `json:"kind"`
	Flipped     []Position `json:"flipped"`
	LimitedUsed bool       `json:"limited_used"`
}

type historyPayload struct {
	History []moveRecordDTO `json:"history"`
}

type resetPayload struct {
	Board      [][]cellDTO `json:"board"`
	BoardSize  int         `json:"board_size"`
	NextPlayer int         `json:"next_player"`
	Status     string      `json:"status"`
}

type settingsPayload struct {
	Settings GameSettingsDTO `json:"settings"`
	Config   Config          `json:"config"`
}

type apiMove struct {
	Row  int    `json:"row"`
	Col  int    `json:"col"`
	Kind string `json:"kind"`
}

type legalMovesResponse struct {
	Moves      []Position `json:"moves"`
	FlipCounts []int      `json:"flip_counts"`
}

func main() {
	configStore.Update(LoadConfig())
	controller := NewGameController(DefaultGameSettings())
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go hub.Run(ctx.Done())
	go func() {
		interval := time.Duration(GetConfig().TickIntervalMs) * time.Millisecond
		if interval <= 0 {
			interval = 50 * time.Millisecond
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if controller.Tick() {
					if record, ok := controller.LatestRecord(); ok {
						hub.broadcastHistory <- historyPayload{History: []moveRecordDTO{recordToDTO(record)}}
					}
					hub.broadcastStatus <- controllerStatus(controller)
				}
			}
		}
	}()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/ping", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})

	r.Get("/api/status", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/api/legal-moves", func(w http.ResponseWriter, r *http.Request) {
		moves := controller.LegalMoves()
		counts := make([]int, len(moves))
		for i, pos := range moves {
			counts[i] = controller.FlipCount(pos)
		}
		writeJSON(w, http.StatusOK, legalMovesResponse{Moves: moves, FlipCounts: counts})
	})

	r.Post("/api/start", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings GameSettingsDTO `json:"settings"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		settings := settingsFromDTO(payload.Settings, DefaultGameSettings())
		controller.StartGame(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/stop", func(w http.ResponseWriter, r *http.Request) {
		settings := controller.Settings()
		controller.Reset(settings)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
		hub.broadcastReset <- resetFromController(controller)
	})

	r.Post("/api/move", func(w http.ResponseWriter, r *http.Request) {
		var payload apiMove
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		choice := MoveChoice{
			Pos:  Position{Row: payload.Row, Col: payload.Col},
			Kind: kindFromString(payload.Kind),
		}
		record, err := controller.ApplyHumanMove(choice)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		hub.broadcastHistory <- historyPayload{History: []moveRecordDTO{recordToDTO(record)}}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/undo", func(w http.ResponseWriter, r *http.Request) {
		if err := controller.Undo(); err != nil {
			code := http.StatusBadRequest
			if errors.Is(err, ErrUndoNotAllowed) {
				code = http.StatusForbidden
			}
			writeJSON(w, code, map[string]string{"error": err.Error()})
			return
		}
		hub.broadcastStatus <- controllerStatus(controller)
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Post("/api/settings", func(w http.ResponseWriter, r *http.Request) {
		var payload struct {
			Settings *GameSettingsDTO `json:"settings"`
			Config   *Config          `json:"config"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid payload"})
			return
		}
		if payload.Config != nil {
			configStore.Update(*payload.Config)
		}
		if payload.Settings != nil {
			settings := settingsFromDTO(*payload.Settings, controller.Settings())
			controller.UpdateSettings(settings, false)
		}
		hub.broadcastSettings <- settingsPayload{
			Settings: settingsToDTO(controller.Settings()),
			Config:   GetConfig(),
		}
		writeJSON(w, http.StatusOK, controllerStatus(controller))
	})

	r.Get("/ws/", func(w http.ResponseWriter, r *http.Request) {
		serveWS(hub, controller, w, r)
	})

	server := &http.Server{
		Addr:    GetConfig().Addr,
		Handler: r,
	}
	serverErrCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrCh <- err
		}
		close(serverErrCh)
	}()

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stopSignals()

	log.Printf("[backend] listening on %s", server.Addr)
	var runErr error
	select {
	case <-sigCtx.Done():
		log.Printf("[backend] shutdown signal received: %v", sigCtx.Err())
	case err, ok := <-serverErrCh:
		if ok {
			runErr = err
			log.Printf("[backend] server error: %v", err)
		}
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Printf("[backend] graceful shutdown failed: %v", err)
		if closeErr := server.Close(); closeErr != nil && !errors.Is(closeErr, http.ErrServerClosed) {
			log.Printf("[backend] forced close failed: %v", closeErr)
		}
	}
	if runErr != nil {
		log.Printf("[backend] exiting after server error: %v", runErr)
	}
}

func serveWS(hub *Hub, controller *GameController, w http.ResponseWriter, r *http.Request) {
	upgrader := websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	client := &Client{hub: hub, send: make(chan []byte, 16)}
	hub.Register(client)

	status := controllerStatus(controller)
	client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})

	go func() {
		defer conn.Close()
		if err := writeWSWithHeartbeat(conn, client.send); err != nil {
			return
		}
	}()

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			hub.Unregister(client)
			return
		}
		var msg wsMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			continue
		}
		switch msg.Type {
		case "request_status":
			status := controllerStatus(controller)
			client.sendJSON(wsMessage{Type: "status", Payload: mustMarshal(status)})
		}
	}
}

func controllerStatus(controller *GameController) StatusResponse {
	state := controller.State()
	finished, winner := controller.IsFinished()
	return StatusResponse{
		Settings:    settingsToDTO(controller.Settings()),
		Config:      GetConfig(),
		Board:       boardToDTO(state.Board),
		BoardSize:   BoardSize,
		NextPlayer:  int(state.ToMove),
		Status:      statusToString(state.Status),
		Finished:    finished,
		Winner:      int(winner),
		PlayerOne:   playerStateToDTO(state.PlayerStateOf(PlayerOne), state.Board),
		PlayerTwo:   playerStateToDTO(state.PlayerStateOf(PlayerTwo), state.Board),
		LegalMoves:  controller.LegalMoves(),
		UndoAllowed: controller.UndoAllowed(),
		History:     historyToDTO(controller.History()),
	}
}

func settingsFromDTO(dto GameSettingsDTO, base GameSettings) GameSettings {
	settings := base
	switch dto.Mode {
	case "ai_vs_ai":
		settings.PlayerOneType = PlayerAI
		settings.PlayerTwoType = PlayerAI
		settings.AllowUndo = false
	case "human_vs_human":
		settings.PlayerOneType = PlayerHuman
		settings.PlayerTwoType = PlayerHuman
		settings.AllowUndo = true
	case "ai_vs_human":
		if dto.HumanPlayer == 2 {
			settings.PlayerOneType = PlayerAI
			settings.PlayerTwoType = PlayerHuman
		} else {
			settings.PlayerOneType = PlayerHuman
			settings.PlayerTwoType = PlayerAI
		}
		settings.AllowUndo = false
	}
	if dto.PlayerOneStrategy != "" {
		settings.PlayerOneStrategy = dto.PlayerOneStrategy
	}
	if dto.PlayerTwoStrategy != "" {
		settings.PlayerTwoStrategy = dto.PlayerTwoStrategy
	}
	if dto.VolatileSupply > 0 {
		settings.VolatileSupply = dto.VolatileSupply
	}
	if dto.ImmutableSupply > 0 {
		settings.ImmutableSupply = dto.ImmutableSupply
	}
	return settings
}

func settingsToDTO(settings GameSettings) GameSettingsDTO {
	mode := "ai_vs_human"
	if settings.PlayerOneType == PlayerAI && settings.PlayerTwoType == PlayerAI {
		mode = "ai_vs_ai"
	} else if settings.PlayerOneType == PlayerHuman && settings.PlayerTwoType == PlayerHuman {
		mode = "human_vs_human"
	}
	humanPlayer := 0
	if settings.PlayerOneType == PlayerHuman {
		humanPlayer = 1
	} else if settings.PlayerTwoType == PlayerHuman {
		humanPlayer = 2
	}
	return GameSettingsDTO{
		Mode:              mode,
		HumanPlayer:       humanPlayer,
		PlayerOneStrategy: settings.PlayerOneStrategy,
		PlayerTwoStrategy: settings.PlayerTwoStrategy,
		VolatileSupply:    settings.VolatileSupply,
		ImmutableSupply:   settings.ImmutableSupply,
		AllowUndo:         settings.AllowUndo,
	}
}

func boardToDTO(board Board) [][]cellDTO {
	rows := make([][]cellDTO, BoardSize)
	for row := 0; row < BoardSize; row++ {
		rows[row] = make([]cellDTO, BoardSize)
		for col := 0; col < BoardSize; col++ {
			if piece, ok := board.At(Position{Row: row, Col: col}); ok {
				rows[row][col] = cellDTO{Owner: int(piece.Owner), Kind: piece.Kind.String()}
			}
		}
	}
	return rows
}

func playerStateToDTO(player PlayerState, board Board) playerStateDTO {
	return playerStateDTO{
		VolatileLeft:  player.VolatileLeft,
		ImmutableLeft: player.ImmutableLeft,
		Wins:          player.Wins,
		PieceCount:    board.CountByOwner(player.ID),
	}
}

func historyToDTO(history MoveHistory) []moveRecordDTO {
	records := history.All()
	dtos := make([]moveRecordDTO, len(records))
	for i, record := range records {
		dtos[i] = recordToDTO(record)
	}
	return dtos
}

func recordToDTO(record MoveRecord) moveRecordDTO {
	return moveRecordDTO{
		Row:         record.Pos.Row,
		Col:         record.Pos.Col,
		Player:      int(record.Piece.Owner),
		Kind:        record.Piece.Kind.String(),
		Flipped:     append([]Position(nil), record.Flipped...),
		LimitedUsed: record.LimitedUsed,
	}
}

func resetFromController(controller *GameController) resetPayload {
	state := controller.State()
	return resetPayload{
		Board:      boardToDTO(state.Board),
		BoardSize:  BoardSize,
		NextPlayer: int(state.ToMove),
		Status:     statusToString(state.Status),
	}
}

func statusToString(status GameStatus) string {
	switch status {
	case StatusRunning:
		return "running"
	case StatusFinished:
		return "finished"
	default:
		return "not_started"
	}
}

func kindFromString(raw string) PieceKind {
	switch raw {
	case "volatile", "bomb":
		return KindVolatile
	case "immutable", "unflippable":
		return KindImmutable
	default:
		return KindStandard
	}
}

func mustMarshal(v any) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
