// Package qnet sketches queueing-network node categories as a minimal
// illustration of how a model built on top of des.Engine would categorize
// its nodes and drive them through the engine's scheduling API. It is not
// part of the engine's contract. Routing, customer objects and the rest of
// a real queueing-network layer are out of scope here.
package qnet

import "github.com/dailypips/dcsxx-des/des"

// NodeCategory classifies a queueing-network node into one of the four
// roles a model built on top of des.Engine would need to distinguish.
type NodeCategory int

const (
	// DelayStation holds a customer for a fixed or sampled delay with no
	// capacity limit and no queueing.
	DelayStation NodeCategory = iota
	// Source generates arrivals into the network.
	Source
	// ServiceStation serves customers one (or a bounded few) at a time,
	// queueing the rest.
	ServiceStation
	// Sink removes customers from the network permanently.
	Sink
)

func (c NodeCategory) String() string {
	switch c {
	case DelayStation:
		return "delay_station"
	case Source:
		return "source"
	case ServiceStation:
		return "service_station"
	case Sink:
		return "sink"
	default:
		return "unknown"
	}
}

// Node is a minimal queueing-network node: a name, a category, and the
// EventSource it fires when a customer arrives at it. A real model would
// attach routing and per-category state (capacity, service-time
// distribution, queue discipline); this is deliberately thin, since none of
// that belongs to the engine's contract.
type Node struct {
	name     string
	category NodeCategory
	arrival  *des.EventSource
}

// NewNode creates a node of the given category, with a fresh EventSource
// named "<name> arrival" that downstream sinks can Connect to.
func NewNode(name string, category NodeCategory) *Node {
	return &Node{
		name:     name,
		category: category,
		arrival:  des.NewEventSource(name + " arrival"),
	}
}

// Name returns the node's name.
func (n *Node) Name() string { return n.name }

// Category returns the node's queueing-network category.
func (n *Node) Category() NodeCategory { return n.category }

// Arrival returns the EventSource fired when a customer arrives at this
// node, so other nodes (or test code) can Connect routing sinks to it.
func (n *Node) Arrival() *des.EventSource { return n.arrival }

// ScheduleArrival schedules a customer arrival at this node at t, carrying
// an arbitrary payload (e.g. a customer ID).
func (n *Node) ScheduleArrival(ctx *des.EngineContext, t des.VTime, payload interface{}) des.Handle {
	return ctx.Schedule(n.arrival, t, payload)
}
