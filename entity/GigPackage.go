package entity

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type PackageTier string

const (
	TierBasic    PackageTier = "basic"
	TierStandard PackageTier = "standard"
	TierPremium  PackageTier = "premium"
)

func (t PackageTier) Valid() bool {
	return t == TierBasic || t == TierStandard || t == TierPremium
}

// StringList stores a feature list as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	return string(b), err
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for StringList", src)
	}
}

type GigPackage struct {
	gorm.Model
	GigID uint        `gorm:"index:idx_gig_tier,unique" json:"gigId"`
	Tier  PackageTier `gorm:"index:idx_gig_tier,unique;not null" json:"tier"`

	Name         string          `json:"name"`
	Price        decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Description  string          `json:"description"`
	Features     StringList      `gorm:"type:text" json:"features"`
	DeliveryDays int             `json:"deliveryDays"`
	Revisions    int             `json:"revisions"`
}
