package services

import (
	"fmt"
	"sort"

	"github.com/yuxuan3d/odin-messaging-app/internal/database"
	"github.com/yuxuan3d/odin-messaging-app/internal/models"
)

// ConversationSummary is one row of a user's conversation list: the partner
// and the single most recent message exchanged with them, in either
// direction.
type ConversationSummary struct {
	Partner     models.PublicUser `json:"partner"`
	LastMessage models.Message    `json:"lastMessage"`
	Direction   string            `json:"direction"` // "sent" or "received", relative to the requesting user
}

type partnerLatest struct {
	PartnerID uint
	MessageID uint
}

// ListConversations returns every conversation the user participates in,
// newest first. Per partner it aggregates the latest received and latest
// sent message separately, then merges the two with the Stamp comparator.
// Keying the aggregates on MAX(id) rather than MAX(created_at) sidesteps
// timestamp collisions between independent partners.
func ListConversations(userID uint) ([]ConversationSummary, error) {
	var received []partnerLatest
	err := database.DB.Model(&models.Message{}).
		Select("sender_id AS partner_id, MAX(id) AS message_id").
		Where("receiver_id = ?", userID).
		Group("sender_id").
		Scan(&received).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating received messages: %w", err)
	}

	var sent []partnerLatest
	err = database.DB.Model(&models.Message{}).
		Select("receiver_id AS partner_id, MAX(id) AS message_id").
		Where("sender_id = ?", userID).
		Group("receiver_id").
		Scan(&sent).Error
	if err != nil {
		return nil, fmt.Errorf("aggregating sent messages: %w", err)
	}

	candidateIDs := make([]uint, 0, len(received)+len(sent))
	for _, r := range received {
		candidateIDs = append(candidateIDs, r.MessageID)
	}
	for _, s := range sent {
		candidateIDs = append(candidateIDs, s.MessageID)
	}

	if len(candidateIDs) == 0 {
		return []ConversationSummary{}, nil
	}

	var candidates []models.Message
	err = database.DB.Preload("Sender").Preload("Receiver").
		Where("id IN ?", candidateIDs).
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("loading candidate messages: %w", err)
	}

	byID := make(map[uint]models.Message, len(candidates))
	for _, m := range candidates {
		byID[m.ID] = m
	}

	// Merge: per partner, keep whichever direction's candidate carries the
	// later (createdAt, id) stamp.
	latest := make(map[uint]models.Message, len(candidateIDs))
	for _, group := range [][]partnerLatest{received, sent} {
		for _, pl := range group {
			candidate, ok := byID[pl.MessageID]
			if !ok {
				continue
			}
			current, seen := latest[pl.PartnerID]
			if !seen || candidate.Stamp().After(current.Stamp()) {
				latest[pl.PartnerID] = candidate
			}
		}
	}

	summaries := make([]ConversationSummary, 0, len(latest))
	for partnerID, msg := range latest {
		direction := "received"
		partner := msg.Sender
		if msg.SenderID == userID {
			direction = "sent"
			partner = msg.Receiver
		}
		if partner.ID != partnerID {
			// Defensive: the winning row must involve the partner it was
			// aggregated under.
			continue
		}
		summaries = append(summaries, ConversationSummary{
			Partner:     partner.Public(),
			LastMessage: msg,
			Direction:   direction,
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].LastMessage.Stamp().After(summaries[j].LastMessage.Stamp())
	})

	return summaries, nil
}
