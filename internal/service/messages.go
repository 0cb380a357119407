package service

import (
	"fmt"

	"freelancehub/internal/domain"

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Conversation summarizes the latest exchange with one peer.
type Conversation struct {
	OtherUserID     uint   `json:"other_user_id"`     // The peer
	OtherUserName   string `json:"other_user_name"`   // Peer display name
	ProfilePicture  string `json:"profile_picture"`   // Peer avatar
	LastMessage     string `json:"last_message"`      // Most recent message text
	LastMessageTime int64  `json:"last_message_time"` // Most recent message timestamp
	UnreadCount     int64  `json:"unread_count"`      // Unread messages from the peer
}

// MessageService handles direct messages between users. Plain CRUD, no
// invariants beyond ownership on delete.
type MessageService struct {
	db *gorm.DB
}

// NewMessageService creates a MessageService.
func NewMessageService(db *gorm.DB) *MessageService {
	return &MessageService{db: db}
}

// Send stores a message and writes a best-effort notification for the receiver.
func (s *MessageService) Send(senderID, receiverID uint, text string) (uint, error) {
	if senderID == 0 || receiverID == 0 || text == "" {
		return 0, ErrValidation
	}
	msg := domain.Message{SenderID: senderID, ReceiverID: receiverID, Text: text}
	if err := s.db.Create(&msg).Error; err != nil {
		return 0, err
	}
	n := domain.Notification{
		UserID:    receiverID,
		Type:      "message",
		Title:     "New Message",
		Message:   fmt.Sprintf("You received a message from user %d", senderID),
		RelatedID: &msg.SenderID,
	}
	if err := s.db.Create(&n).Error; err != nil {
		logrus.WithFields(logrus.Fields{
			"sender_id":   senderID,    // Sending user
			"receiver_id": receiverID,  // Receiving user
			"error":       err.Error(), // Error message
		}).Warn("Message notification failed")
	}
	return msg.ID, nil
}

// Thread returns the full message history between two users, oldest first.
func (s *MessageService) Thread(user1ID, user2ID uint) ([]domain.Message, error) {
	if user1ID == 0 || user2ID == 0 {
		return nil, ErrValidation
	}
	var msgs []domain.Message
	err := s.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			user1ID, user2ID, user2ID, user1ID).
		Order("sent_at asc").
		Find(&msgs).Error
	return msgs, err
}

// Conversations folds a user's messages into one summary per peer, ordered by
// the latest exchange. Peer names resolve best effort.
func (s *MessageService) Conversations(userID uint) ([]Conversation, error) {
	if userID == 0 {
		return nil, ErrValidation
	}
	var msgs []domain.Message
	if err := s.db.
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Order("sent_at desc").
		Find(&msgs).Error; err != nil {
		return nil, err
	}
	seen := make(map[uint]*Conversation)
	var order []uint
	for _, m := range msgs {
		peer := m.SenderID
		if m.SenderID == userID {
			peer = m.ReceiverID
		}
		conv, ok := seen[peer]
		if !ok {
			// Messages arrive newest first, so the first one per peer is the
			// latest exchange.
			conv = &Conversation{OtherUserID: peer, LastMessage: m.Text, LastMessageTime: m.SentAt}
			seen[peer] = conv
			order = append(order, peer)
		}
		if m.ReceiverID == userID && !m.IsRead {
			conv.UnreadCount++
		}
	}
	out := make([]Conversation, 0, len(order))
	for _, peer := range order {
		conv := seen[peer]
		var u domain.User
		if err := s.db.First(&u, peer).Error; err == nil {
			conv.OtherUserName = u.Name
			conv.ProfilePicture = u.ProfilePicture
		}
		out = append(out, *conv)
	}
	return out, nil
}

// MarkRead marks every unread message from sender to receiver as read and
// returns how many rows changed.
func (s *MessageService) MarkRead(receiverID, senderID uint) (int64, error) {
	if receiverID == 0 || senderID == 0 {
		return 0, ErrValidation
	}
	res := s.db.Model(&domain.Message{}).
		Where("receiver_id = ? AND sender_id = ? AND is_read = ?", receiverID, senderID, false).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}

// Delete removes a message its sender owns. ErrNotFound when the id does not
// exist or belongs to someone else.
func (s *MessageService) Delete(messageID, senderID uint) error {
	if messageID == 0 || senderID == 0 {
		return ErrValidation
	}
	res := s.db.Where("id = ? AND sender_id = ?", messageID, senderID).Delete(&domain.Message{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Contacts lists every other user, for starting a new conversation.
func (s *MessageService) Contacts(currentUserID uint) ([]domain.User, error) {
	if currentUserID == 0 {
		return nil, ErrValidation
	}
	var users []domain.User
	err := s.db.Where("id != ?", currentUserID).Order("name").Find(&users).Error
	return users, err
}
