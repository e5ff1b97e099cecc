package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublishRunsHandlersInSubscriptionOrder(t *testing.T) {
	b := NewBridge()
	var order []string

	b.Subscribe(KindLike, func(Signal) { order = append(order, "first") })
	b.Subscribe(KindLike, func(Signal) { order = append(order, "second") })

	b.Publish(Signal{Kind: KindLike, SpotID: "x"})
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestSignalsAreIsolatedByKind(t *testing.T) {
	b := NewBridge()
	var likes, comments int

	b.Subscribe(KindLike, func(Signal) { likes++ })
	b.Subscribe(KindComment, func(Signal) { comments++ })

	b.Publish(Signal{Kind: KindLike, SpotID: "x"})
	b.Publish(Signal{Kind: KindLike, SpotID: "x"})
	b.Publish(Signal{Kind: KindComment, SpotID: "x", Content: "hi"})

	assert.Equal(t, 2, likes)
	assert.Equal(t, 1, comments)
}

func TestPayloadReachesHandler(t *testing.T) {
	b := NewBridge()
	var got Signal
	b.Subscribe(KindComment, func(s Signal) { got = s })

	b.Publish(Signal{Kind: KindComment, SpotID: "spot-7", Content: "so calm"})

	assert.Equal(t, "spot-7", got.SpotID)
	assert.Equal(t, "so calm", got.Content)
}

func TestPublishWithoutSubscribersIsDropped(t *testing.T) {
	b := NewBridge()
	assert.NotPanics(t, func() {
		b.Publish(Signal{Kind: KindDislike, SpotID: "nobody-home"})
	})
}
