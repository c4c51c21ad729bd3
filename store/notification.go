package store

import "github.com/junaidrashid-git/stitchlink-api/models"

func (s *Store) MarkNotificationAsRead(notificationID string) error {
	s.mu.Lock()
	found := false
	for i := range s.notifications {
		if s.notifications[i].ID == notificationID {
			s.notifications[i].Read = true
			found = true
			break
		}
	}
	s.mu.Unlock()

	if !found {
		return ErrNotificationNotFound
	}
	s.emit(Change{Kind: ChangeNotification, NotificationID: notificationID})
	return nil
}

// Notifications returns the session's notifications, newest first.
func (s *Store) Notifications() []models.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Notification{}, s.notifications...)
}

func (s *Store) UnreadCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, notif := range s.notifications {
		if !notif.Read {
			n++
		}
	}
	return n
}
