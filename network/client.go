package network

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
	"github.com/leap-fish/necs/router"
	"github.com/leap-fish/necs/transports"

	"github.com/solheim/driftwars-client/shared/messages"
)

type ClientState int

const (
	StateDisconnected ClientState = iota
	StateConnecting
	StateConnected
	StateJoinedGame
	StateError
)

func (s ClientState) String() string {
	switch s {
	case StateDisconnected:
		return "disconnected"
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	case StateJoinedGame:
		return "joined"
	case StateError:
		return "error"
	}
	return "unknown"
}

const eventQueueSize = 1024

// Client manages a WebSocket connection to the driftwars server.
// All shared fields are protected by mu (router callbacks run on necs
// goroutines). Entity events funnel through a single ordered queue so the
// translator sees them in exactly the order the connection delivered them.
type Client struct {
	mu sync.RWMutex

	state          ClientState
	lastError      error
	sessionID      string
	pilotID        string
	reconnectToken string
	serverName     string
	tickRate       int
	sector         string
	conn           *websocket.Conn

	eventCh chan any
	dropped uint64
}

func NewClient() *Client {
	return &Client{
		state:     StateDisconnected,
		sessionID: uuid.NewString(),
		eventCh:   make(chan any, eventQueueSize),
	}
}

// Connect dials the server in a background goroutine and initiates the join handshake.
func (c *Client) Connect(address, version, pilotName string) {
	c.mu.Lock()
	c.state = StateConnecting
	c.lastError = nil
	c.mu.Unlock()

	router.OnConnect(func(_ *router.NetworkClient) {
		log.Println("[client] connected to server")
		c.mu.Lock()
		c.state = StateConnected
		token := c.reconnectToken
		c.mu.Unlock()

		payload, err := router.Serialize(messages.JoinRequest{
			Version:        version,
			SessionID:      c.sessionID,
			PilotName:      pilotName,
			ReconnectToken: token,
		})
		if err != nil {
			c.setError(fmt.Errorf("failed to serialize join request: %w", err))
			return
		}

		c.mu.RLock()
		conn := c.conn
		c.mu.RUnlock()

		if conn != nil {
			if err := conn.Write(context.Background(), websocket.MessageBinary, payload); err != nil {
				c.setError(fmt.Errorf("failed to send join request: %w", err))
			}
		}
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinAccepted) {
		log.Printf("[client] join accepted: pilot=%s server=%s tickRate=%d sector=%s",
			msg.PilotID, msg.ServerName, msg.TickRate, msg.Sector)
		c.mu.Lock()
		c.pilotID = msg.PilotID
		c.reconnectToken = msg.ReconnectToken
		c.serverName = msg.ServerName
		c.tickRate = msg.TickRate
		c.sector = msg.Sector
		c.state = StateJoinedGame
		c.mu.Unlock()
	})

	router.On(func(_ *router.NetworkClient, msg messages.JoinRejected) {
		log.Printf("[client] join rejected: %s", msg.Reason)
		c.setError(fmt.Errorf("join rejected: %s", msg.Reason))
	})

	router.On(func(_ *router.NetworkClient, evt messages.SpawnEvent) { c.enqueue(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.MoveEvent) { c.enqueue(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.EnergyEvent) { c.enqueue(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.StateEvent) { c.enqueue(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.DespawnEvent) { c.enqueue(evt) })
	router.On(func(_ *router.NetworkClient, evt messages.WorldResetEvent) { c.enqueue(evt) })

	router.OnDisconnect(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] disconnected: %v", err)
		c.mu.Lock()
		if c.state != StateError {
			c.state = StateDisconnected
		}
		c.conn = nil
		c.mu.Unlock()
	})

	router.OnError(func(_ *router.NetworkClient, err error) {
		log.Printf("[client] error: %v", err)
	})

	go func() {
		transport := transports.NewWsClientTransport("ws://" + address)
		err := transport.Start(func(conn *websocket.Conn) {
			c.mu.Lock()
			c.conn = conn
			c.mu.Unlock()
		})
		if err != nil {
			c.setError(fmt.Errorf("connection failed: %w", err))
		}
	}()
}

func (c *Client) Disconnect() {
	c.mu.Lock()
	conn := c.conn
	c.state = StateDisconnected
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		_ = conn.CloseNow()
	}

	router.ResetRouter()
}

func (c *Client) State() ClientState {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

func (c *Client) LastError() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastError
}

func (c *Client) PilotID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pilotID
}

func (c *Client) Sector() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sector
}

func (c *Client) TickRate() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.tickRate
}

// DrainEvents returns every entity event queued since the last drain, in
// arrival order. Non-blocking; called once per frame before any buffer reads
// so a frame always observes a fully-applied write set.
func (c *Client) DrainEvents() []any {
	var out []any
	for {
		select {
		case evt := <-c.eventCh:
			out = append(out, evt)
		default:
			return out
		}
	}
}

// DroppedEvents reports how many inbound events were discarded because the
// queue was full (the render loop stalled for a long time).
func (c *Client) DroppedEvents() uint64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dropped
}

func (c *Client) SendMessage(msg any) error {
	c.mu.RLock()
	conn := c.conn
	c.mu.RUnlock()

	if conn == nil {
		return fmt.Errorf("not connected")
	}

	payload, err := router.Serialize(msg)
	if err != nil {
		return fmt.Errorf("serialize: %w", err)
	}

	return conn.Write(context.Background(), websocket.MessageBinary, payload)
}

func (c *Client) enqueue(evt any) {
	select {
	case c.eventCh <- evt:
	default:
		c.mu.Lock()
		c.dropped++
		dropped := c.dropped
		c.mu.Unlock()
		log.Printf("[client] event queue full, dropped event (%d total)", dropped)
	}
}

func (c *Client) setError(err error) {
	c.mu.Lock()
	c.state = StateError
	c.lastError = err
	c.mu.Unlock()
}

// NowMs returns the local clock in float64 milliseconds, the unit every
// timestamp in the buffering layer uses.
func NowMs() float64 {
	return float64(time.Now().UnixNano()) / 1e6
}
