package store

import "github.com/junaidrashid-git/stitchlink-api/models"

// AddReview puts r at the front of the review list. The design id and
// rating range are the caller's responsibility.
func (s *Store) AddReview(r models.Review) {
	s.mu.Lock()
	s.reviews = append([]models.Review{r}, s.reviews...)
	s.mu.Unlock()

	s.emit(Change{Kind: ChangeReview, ReviewID: r.ID, DesignID: r.DesignID})
}

func (s *Store) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Review{}, s.reviews...)
}

func (s *Store) ReviewsFor(designID string) []models.Review {
	out := []models.Review{}
	for _, r := range s.Reviews() {
		if r.DesignID == designID {
			out = append(out, r)
		}
	}
	return out
}

// AverageRating returns the mean rating for a design and how many reviews
// it is based on. No reviews gives (0, 0).
func (s *Store) AverageRating(designID string) (float64, int) {
	reviews := s.ReviewsFor(designID)
	if len(reviews) == 0 {
		return 0, 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(reviews)), len(reviews)
}
