package planner

import (
	"encoding/json"
	"fmt"
	"github.com/OpenTransitTools/ptoplanner/business/optimizer"
	"github.com/nats-io/nats.go"
	logger "log"
	"time"
)

// SessionUpdate is published each time a planning session changes
type SessionUpdate struct {
	SessionId string            `json:"session_id"`
	Timestamp int64             `json:"timestamp"`
	Action    string            `json:"action"`
	Summary   optimizer.Summary `json:"summary"`
}

// sessionPublicationDestination is where session updates should be sent.
type sessionPublicationDestination interface {
	Publish(update *SessionUpdate) error
}

// natsSessionPublicationDestination sends session updates over nats
type natsSessionPublicationDestination struct {
	natsConn      *nats.Conn
	updateSubject string
}

func (n *natsSessionPublicationDestination) Publish(update *SessionUpdate) error {
	jsonData, err := json.Marshal(update)
	if err != nil {
		return fmt.Errorf("error marshaling session update to json: error:%v", err)
	}
	return n.natsConn.Publish(n.updateSubject, jsonData)
}

// sessionPublisher summarizes changed sessions and publishes them
type sessionPublisher struct {
	log                           *logger.Logger
	sessionPublicationDestination sessionPublicationDestination
	clock                         func() time.Time
}

// makeSessionPublisher builds sessionPublisher
func makeSessionPublisher(log *logger.Logger,
	sessionPublicationDestination sessionPublicationDestination,
	clock func() time.Time) *sessionPublisher {
	return &sessionPublisher{
		log:                           log,
		sessionPublicationDestination: sessionPublicationDestination,
		clock:                         clock,
	}
}

// publishSession publishes the summary of state after action changed session id.
// Failures are logged, a session never fails because its update could not be sent
func (p *sessionPublisher) publishSession(id string, action string, state optimizer.State) {
	update := SessionUpdate{
		SessionId: id,
		Timestamp: p.clock().Unix(),
		Action:    action,
		Summary:   optimizer.Summarize(state),
	}
	if err := p.sessionPublicationDestination.Publish(&update); err != nil {
		p.log.Printf("Error publishing session update: error:%v\n", err)
	}
}
