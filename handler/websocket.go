package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	feedClients = make(map[uint]map[*websocket.Conn]bool)
	feedSubs    = make(map[uint]*redis.PubSub)
	feedMu      sync.Mutex
)

func checkinChannel(eventId uint) string {
	return fmt.Sprintf("event:%d:checkins", eventId)
}

// PublishCheckin pushes a check-in onto the event's redis channel for
// every connected dashboard.
func PublishCheckin(eventId uint, payload any) {
	if redisClient == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("checkin publish marshal failed: %v", err)
		return
	}
	if err := redisClient.Publish(context.Background(), checkinChannel(eventId), data).Err(); err != nil {
		log.Printf("checkin publish failed: %v", err)
	}
}

// addFeedClient registers a dashboard connection and reports whether it
// is the event's first, meaning the redis subscription must be started.
func addFeedClient(eventId uint, c *websocket.Conn) bool {
	feedMu.Lock()
	defer feedMu.Unlock()

	if feedClients[eventId] == nil {
		feedClients[eventId] = make(map[*websocket.Conn]bool)
	}
	feedClients[eventId][c] = true

	return len(feedClients[eventId]) == 1
}

// removeFeedClient drops a connection and reports whether the event has
// no dashboards left, meaning the subscription should be closed.
func removeFeedClient(eventId uint, c *websocket.Conn) bool {
	feedMu.Lock()
	defer feedMu.Unlock()

	clients := feedClients[eventId]
	if clients == nil {
		return false
	}
	delete(clients, c)
	if len(clients) == 0 {
		delete(feedClients, eventId)
		return true
	}

	return false
}

// CheckinFeed streams live check-ins for one event to organizer
// dashboards over a websocket. One redis subscription per event serves
// every connected dashboard.
func CheckinFeed(c *websocket.Conn) {
	eventIdStr := c.Params("id")
	id64, _ := strconv.ParseUint(eventIdStr, 10, 64)
	eventId := uint(id64)

	first := addFeedClient(eventId, c)

	defer func() {
		if removeFeedClient(eventId, c) {
			feedMu.Lock()
			if sub := feedSubs[eventId]; sub != nil {
				sub.Close()
				delete(feedSubs, eventId)
			}
			feedMu.Unlock()
		}
		c.Close()
	}()

	if first && redisClient != nil {
		pubsub := redisClient.Subscribe(context.Background(), checkinChannel(eventId))
		feedMu.Lock()
		feedSubs[eventId] = pubsub
		feedMu.Unlock()
		go fanOutCheckins(eventId, pubsub)
	}

	// Hold the connection open; the fan-out goroutine does the writing.
	// The read loop only detects disconnects.
	for {
		if _, _, err := c.ReadMessage(); err != nil {
			return
		}
	}
}

// fanOutCheckins delivers each published check-in once to every
// dashboard watching the event. Ends when the subscription is closed.
func fanOutCheckins(eventId uint, pubsub *redis.PubSub) {
	for msg := range pubsub.Channel() {
		payload := []byte(msg.Payload)

		feedMu.Lock()
		for conn := range feedClients[eventId] {
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				conn.Close()
				delete(feedClients[eventId], conn)
			}
		}
		feedMu.Unlock()
	}
}
