package models

import (
	"database/sql/driver"
	"fmt"

	"github.com/farmlink-ke/farm_market/internal/hash"
)

// Password stores only a bcrypt hash. The hash is unexported and there is no
// getter, so the no-retrieval policy is enforced at compile time rather than
// with a runtime panic.
type Password struct {
	hash string
}

func NewPassword(plain string) (Password, error) {
	var p Password
	if err := p.Set(plain); err != nil {
		return Password{}, err
	}
	return p, nil
}

// Set replaces the stored hash with the hash of plain.
func (p *Password) Set(plain string) error {
	if plain == "" {
		return fmt.Errorf("%w: password cannot be empty", ErrValidation)
	}
	h, err := hash.HashPassword(plain)
	if err != nil {
		return err
	}
	p.hash = h
	return nil
}

// Authenticate reports whether plain matches the stored hash. A password
// that was never set matches nothing.
func (p Password) Authenticate(plain string) bool {
	if p.hash == "" {
		return false
	}
	return hash.CheckPassword(p.hash, plain)
}

func (p *Password) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		p.hash = ""
	case string:
		p.hash = v
	case []byte:
		p.hash = string(v)
	default:
		return fmt.Errorf("cannot scan %T into Password", value)
	}
	return nil
}

func (p Password) Value() (driver.Value, error) {
	if p.hash == "" {
		return nil, nil
	}
	return p.hash, nil
}
