package api

import (
	"freelancehub/internal/service" // Service layer
	"net/http"                      // HTTP status codes
	"strconv"                       // String conversion

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// SendMessageRequest represents a direct message
type SendMessageRequest struct {
	SenderID    uint   `json:"sender_id" binding:"required"`    // Sending user
	ReceiverID  uint   `json:"receiver_id" binding:"required"`  // Receiving user
	MessageText string `json:"message_text" binding:"required"` // Message body
}

// SendMessageHandler stores a direct message
func SendMessageHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SendMessageRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("All fields are required"))
			return
		}
		messageID, err := messages.Send(req.SenderID, req.ReceiverID, req.MessageText)
		if err != nil {
			abortWith(c, err, "Failed to send message")
			return
		}
		// Log successful send
		logrus.WithFields(logrus.Fields{
			"sender_id":   req.SenderID,   // Sending user
			"receiver_id": req.ReceiverID, // Receiving user
			"message_id":  messageID,      // New message
		}).Info("Message sent")
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Message sent successfully", "message_id": messageID}))
	}
}

// ConversationsHandler returns one summary per peer for a user
func ConversationsHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		conversations, err := messages.Conversations(uint(userID))
		if err != nil {
			abortWith(c, err, "Failed to fetch conversations")
			return
		}
		// Return the conversations
		c.JSON(http.StatusOK, success(gin.H{"conversations": conversations}))
	}
}

// ThreadHandler returns the message history between two users
func ThreadHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user1ID, err1 := strconv.ParseUint(c.Param("user1_id"), 10, 32) // Parse first user id
		user2ID, err2 := strconv.ParseUint(c.Param("user2_id"), 10, 32) // Parse second user id
		if err1 != nil || err2 != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user IDs"))
			return
		}
		msgs, err := messages.Thread(uint(user1ID), uint(user2ID))
		if err != nil {
			abortWith(c, err, "Failed to fetch messages")
			return
		}
		// Return the thread
		c.JSON(http.StatusOK, success(gin.H{"messages": msgs}))
	}
}

// MarkReadRequest identifies the peer whose messages are being read
type MarkReadRequest struct {
	ReceiverID uint `json:"receiver_id" binding:"required"` // Reading user
	SenderID   uint `json:"sender_id" binding:"required"`   // Peer whose messages become read
}

// MarkReadHandler marks all unread messages from one sender as read
func MarkReadHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req MarkReadRequest // Bind JSON request to struct
		// Validate request
		if err := c.ShouldBindJSON(&req); err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Receiver and sender IDs are required"))
			return
		}
		updated, err := messages.MarkRead(req.ReceiverID, req.SenderID)
		if err != nil {
			abortWith(c, err, "Failed to mark messages as read")
			return
		}
		// Return success response with how many rows changed
		c.JSON(http.StatusOK, success(gin.H{"message": "Messages marked as read", "updated": updated}))
	}
}

// DeleteMessageHandler deletes one of the authenticated sender's messages
func DeleteMessageHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		messageID, err := strconv.ParseUint(c.Param("message_id"), 10, 32) // Parse message id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid message ID"))
			return
		}
		userID, exists := c.Get("userID") // Sender identity from the JWT middleware
		// Check if userID exists in context
		if !exists {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, fail("Unauthorized"))
			return
		}
		if err := messages.Delete(uint(messageID), userID.(uint)); err != nil {
			abortWith(c, err, "Failed to delete message")
			return
		}
		// Return success response
		c.JSON(http.StatusOK, success(gin.H{"message": "Message deleted successfully"}))
	}
}

// ContactsHandler lists users available to start a conversation with
func ContactsHandler(messages *service.MessageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		currentID, err := strconv.ParseUint(c.Param("current_user_id"), 10, 32) // Parse user id from path
		if err != nil {
			// If invalid, return bad request
			c.JSON(http.StatusBadRequest, fail("Invalid user ID"))
			return
		}
		users, err := messages.Contacts(uint(currentID))
		if err != nil {
			abortWith(c, err, "Failed to fetch users")
			return
		}
		// Return the users
		c.JSON(http.StatusOK, success(gin.H{"users": users}))
	}
}
