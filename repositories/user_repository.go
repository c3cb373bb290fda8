package repositories

import (
	"errors"
	"fmt"
	"strings"

	"owsb-app/controllers/idgen"
	"owsb-app/database"
	"owsb-app/models"
	"owsb-app/utils"
)

type UserRepository struct {
	store *database.Store
}

func NewUserRepository(store *database.Store) *UserRepository {
	return &UserRepository{store}
}

func (r *UserRepository) List() []models.User {
	var users []models.User
	for _, line := range r.store.ReadLines(database.UsersFile) {
		if u, ok := models.UserFromRecord(utils.SplitRow(line)); ok {
			users = append(users, u)
		}
	}
	return users
}

func (r *UserRepository) Get(id string) (models.User, error) {
	for _, u := range r.List() {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", id, models.ErrNotFound)
}

func (r *UserRepository) FindByUsername(username string) (models.User, error) {
	for _, u := range r.List() {
		if strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return models.User{}, fmt.Errorf("user %s: %w", username, models.ErrNotFound)
}

// Authenticate matches username, password and role against one Active user.
func (r *UserRepository) Authenticate(username, password, role string) (models.User, error) {
	for _, u := range r.List() {
		if u.Username == username && u.Password == password && strings.EqualFold(u.Role, role) {
			if u.Status != models.UserActive {
				return models.User{}, errors.New("account is inactive")
			}
			return u, nil
		}
	}
	return models.User{}, errors.New("invalid username, password, or role")
}

func (r *UserRepository) Create(u models.User) error {
	return r.store.AppendLine(database.UsersFile, utils.JoinRow(u.Record()))
}

// CreateNext mints the next OW id and appends the row under one file
// lock, refusing a username another row already holds.
func (r *UserRepository) CreateNext(u models.User) (models.User, error) {
	var duplicate error
	_, err := r.store.Update(database.UsersFile, func(lines []string) ([]string, bool) {
		var ids []string
		for _, line := range lines {
			existing, ok := models.UserFromRecord(utils.SplitRow(line))
			if !ok {
				continue
			}
			if strings.EqualFold(existing.Username, u.Username) {
				duplicate = fmt.Errorf("username %s is taken: %w", u.Username, models.ErrDuplicate)
				return lines, false
			}
			ids = append(ids, existing.ID)
		}
		u.ID = idgen.NextSequential(ids, idgen.PrefixUser, 3)
		return append(lines, utils.JoinRow(u.Record())), true
	})
	if err != nil {
		return models.User{}, err
	}
	if duplicate != nil {
		return models.User{}, duplicate
	}
	return u, nil
}

func (r *UserRepository) Update(u models.User) error {
	return r.rewrite(u.ID, func([]string) []string { return u.Record() })
}

// Deactivate flips the status column and leaves the rest of the row alone.
func (r *UserRepository) Deactivate(id string) error {
	return r.rewrite(id, func(parts []string) []string {
		if len(parts) > 4 {
			parts[4] = models.UserInactive
		}
		return parts
	})
}

func (r *UserRepository) Delete(id string) error {
	changed, err := r.store.Update(database.UsersFile, func(lines []string) ([]string, bool) {
		var kept []string
		removed := false
		for _, line := range lines {
			if utils.SplitRow(line)[0] == id {
				removed = true
				continue
			}
			kept = append(kept, line)
		}
		return kept, removed
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return nil
}

func (r *UserRepository) rewrite(id string, transform func(parts []string) []string) error {
	changed, err := r.store.Update(database.UsersFile, func(lines []string) ([]string, bool) {
		updated := false
		for i, line := range lines {
			parts := utils.SplitRow(line)
			if parts[0] == id {
				lines[i] = utils.JoinRow(transform(parts))
				updated = true
			}
		}
		return lines, updated
	})
	if err != nil {
		return err
	}
	if !changed {
		return fmt.Errorf("user %s: %w", id, models.ErrNotFound)
	}
	return nil
}
