package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"ship_catalog/internal/app/ds"
	"ship_catalog/internal/app/utils"
)

var (
	ErrUserExists       = errors.New("user already exists")
	ErrUserNotFound     = errors.New("user not found")
	ErrBadCredentials   = errors.New("invalid login or password")
	ErrPasswordRequired = errors.New("password is empty")
)

func sessionKey(userID int) string {
	return "jwt:" + strconv.Itoa(userID)
}

// GetUserByLogin returns user by login
func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.WithContext(ctx).Where("login = ?", login).First(user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByID - получить пользователя по ID
func (r *Repository) GetUserByID(ctx context.Context, userID int) (*ds.User, error) {
	user := &ds.User{}
	err := r.db.WithContext(ctx).First(user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser checks uniqueness, hashes the password and creates the user.
// New accounts always start as viewers.
func (r *Repository) RegisterUser(ctx context.Context, user ds.User) (ds.User, error) {
	if user.Password == "" {
		return ds.User{}, ErrPasswordRequired
	}
	_, err := r.GetUserByLogin(ctx, user.Login)
	if err == nil {
		return ds.User{}, ErrUserExists
	}
	if !errors.Is(err, ErrUserNotFound) {
		return ds.User{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return ds.User{}, fmt.Errorf("bcrypt generate error: %w", err)
	}
	user.Password = string(hashed)
	user.Role = ds.RoleViewer
	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return ds.User{}, fmt.Errorf("create user: %w", err)
	}

	logrus.WithField("login", user.Login).Info("user registered")
	// не отдаём пароль наружу
	user.Password = ""
	return user, nil
}

// Authenticate returns the user when login and password match.
func (r *Repository) Authenticate(ctx context.Context, login, password string) (*ds.User, error) {
	user, err := r.GetUserByLogin(ctx, login)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrBadCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		logrus.WithField("login", login).Debug("password mismatch")
		return nil, ErrBadCredentials
	}
	user.Password = ""
	return user, nil
}

// LoginUser checks credentials, signs a JWT and stores it as the user's
// only live session.
func (r *Repository) LoginUser(ctx context.Context, login, password string) (string, *ds.User, error) {
	if r.jwtKey == "" {
		return "", nil, errors.New("jwt key is empty")
	}
	user, err := r.Authenticate(ctx, login, password)
	if err != nil {
		return "", nil, err
	}

	token, err := utils.GenerateJWT(r.JWTKey(), user.UserID, user.Role, r.jwtTTL)
	if err != nil {
		return "", nil, err
	}
	if err := r.sessions.Save(ctx, sessionKey(user.UserID), token, r.jwtTTL); err != nil {
		return "", nil, fmt.Errorf("save jwt token error: %w", err)
	}

	logrus.WithField("user_id", user.UserID).Info("user logged in")
	return token, user, nil
}

// LogoutUser drops the stored session so the token stops being accepted.
func (r *Repository) LogoutUser(ctx context.Context, userID int) error {
	if err := r.sessions.Delete(ctx, sessionKey(userID)); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// SessionValid reports whether token is the live session of the user.
func (r *Repository) SessionValid(ctx context.Context, userID int, token string) (bool, error) {
	stored, ok, err := r.sessions.Get(ctx, sessionKey(userID))
	if err != nil {
		return false, err
	}
	return ok && stored == token, nil
}

// UpdateUser - обновить данные пользователя. Login and role are not
// changed here; a non-empty password is re-hashed.
func (r *Repository) UpdateUser(ctx context.Context, user ds.User) error {
	updates := map[string]interface{}{
		"fio":      user.FIO,
		"contacts": user.Contacts,
	}
	if user.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("bcrypt generate error: %w", err)
		}
		updates["password"] = string(hashed)
	}
	res := r.db.WithContext(ctx).Model(&ds.User{}).Where("user_id = ?", user.UserID).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetRole changes the role of the user with the given login.
func (r *Repository) SetRole(ctx context.Context, login, role string) error {
	if role != ds.RoleViewer && role != ds.RoleModerator {
		return fmt.Errorf("unknown role %q", role)
	}
	res := r.db.WithContext(ctx).Model(&ds.User{}).Where("login = ?", login).Update("role", role)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
