package queue

import (
	"context"
	"strconv"
	"sync"
)

// Memory is an unbounded in-process queue for local development and tests.
// Rejected messages are kept in a dead letter list.
type Memory struct {
	mu         sync.Mutex
	seq        int
	pending    []memoryMessage
	unacked    map[string]memoryMessage
	deadLetter []memoryMessage
}

type memoryMessage struct {
	id   string
	key  string
	body []byte
}

func NewMemory() *Memory {
	return &Memory{
		unacked: map[string]memoryMessage{},
	}
}

func (m *Memory) Publish(ctx context.Context, key string, body []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.seq++
	m.pending = append(m.pending, memoryMessage{
		id:   strconv.Itoa(m.seq),
		key:  key,
		body: append([]byte(nil), body...),
	})

	return nil
}

func (m *Memory) Receive(ctx context.Context, max int) ([]Delivery, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	n := min(max, len(m.pending))
	deliveries := make([]Delivery, 0, n)

	for _, msg := range m.pending[:n] {
		m.unacked[msg.id] = msg
		deliveries = append(deliveries, &memoryDelivery{q: m, msg: msg})
	}
	m.pending = m.pending[n:]

	return deliveries, nil
}

// Len returns the number of messages waiting to be received.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// DeadLettered returns the bodies of all rejected messages.
func (m *Memory) DeadLettered() [][]byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	bodies := make([][]byte, 0, len(m.deadLetter))
	for _, msg := range m.deadLetter {
		bodies = append(bodies, msg.body)
	}
	return bodies
}

func (m *Memory) Close() error {
	return nil
}

func (m *Memory) settle(id string, reject bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	msg, ok := m.unacked[id]
	if !ok {
		return
	}
	delete(m.unacked, id)

	if reject {
		m.deadLetter = append(m.deadLetter, msg)
	}
}

type memoryDelivery struct {
	q   *Memory
	msg memoryMessage
}

func (d *memoryDelivery) ID() string {
	return d.msg.id
}

func (d *memoryDelivery) Body() []byte {
	return d.msg.body
}

func (d *memoryDelivery) Ack(ctx context.Context) error {
	d.q.settle(d.msg.id, false)
	return nil
}

func (d *memoryDelivery) Reject(ctx context.Context) error {
	d.q.settle(d.msg.id, true)
	return nil
}
