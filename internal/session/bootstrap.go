package session

import "context"

// Bootstrap converts durable credentials into live session state. It runs
// its sequence at most once per process; repeat calls return immediately.
//
// The sequence is strictly ordered: read stored token and user id, record
// the token, hydrate the profile, then drop the loading flag. When
// hydration fails the store is cleared rather than left with a half-valid
// token. Once IsLoading is false, IsAuthenticated is trustworthy.
func (m *Manager) Bootstrap(ctx context.Context) {
	m.bootstrapOnce.Do(func() {
		defer m.SetLoading(false)

		token, okToken := m.creds.Token()
		userID, okUser := m.creds.UserID()
		if !okToken || !okUser {
			return
		}

		m.SetToken(token)

		user, err := m.profiles.Profile(ctx)
		if err != nil {
			m.logger.Error("failed to hydrate user profile, clearing credentials",
				"user_id", userID,
				"error", err)
			if clearErr := m.creds.Clear(); clearErr != nil {
				m.logger.Error("failed to clear credentials", "error", clearErr)
			}
			return
		}

		m.SetUser(&user)
	})
}
