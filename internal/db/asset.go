package db

import (
	"errors"

	"gorm.io/gorm"
)

// ErrAssetNotFound 目标图片不存在。
var ErrAssetNotFound = errors.New("asset not found")

// ErrUseCountUnderflow 引用计数已为 0 仍收到递减请求，说明上游的
// 引用簿记出现了偏差，需要暴露而不是静默截断。
var ErrUseCountUnderflow = errors.New("asset use count underflow")

// Asset 定义了文章内容可引用的图片模型。UseCount 记录当前有多少篇
// 存活文章的内容嵌入了该图片的规范自引用链接。
type Asset struct {
	gorm.Model
	OwnerID  uint `gorm:"index;not null"`
	Title    string
	Path     string
	Width    int
	Height   int
	UseCount int `gorm:"default:0"`
}

// AssetStore wraps asset rows and their reference counters.
type AssetStore struct {
	db *gorm.DB
}

// NewAssetStore creates an AssetStore instance.
func NewAssetStore(gdb *gorm.DB) *AssetStore {
	return &AssetStore{db: gdb}
}

// Insert persists a new asset row.
func (s *AssetStore) Insert(asset *Asset) error {
	return s.db.Create(asset).Error
}

// GetByID fetches an asset by id, nil when absent.
func (s *AssetStore) GetByID(id uint) (*Asset, error) {
	var asset Asset
	if err := s.db.First(&asset, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &asset, nil
}

// ListByOwner returns all of an owner's assets, newest first.
func (s *AssetStore) ListByOwner(ownerID uint) ([]Asset, error) {
	var assets []Asset
	if err := s.db.Where("owner_id = ?", ownerID).Order("created_at desc").Find(&assets).Error; err != nil {
		return nil, err
	}
	return assets, nil
}

// IncrementUseCount bumps the reference counter of the asset by one.
// A missing asset id is tolerated: stale links in content may point at
// pictures that were removed outside this flow.
func (s *AssetStore) IncrementUseCount(assetID uint) error {
	return s.db.Model(&Asset{}).
		Where("id = ?", assetID).
		UpdateColumn("use_count", gorm.Expr("use_count + 1")).Error
}

// DecrementUseCount lowers the reference counter of the asset by one.
// The counter never goes below zero; a decrement that would do so is
// reported as ErrUseCountUnderflow.
func (s *AssetStore) DecrementUseCount(assetID uint) error {
	result := s.db.Model(&Asset{}).
		Where("id = ? AND use_count > 0", assetID).
		UpdateColumn("use_count", gorm.Expr("use_count - 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	asset, err := s.GetByID(assetID)
	if err != nil {
		return err
	}
	if asset == nil {
		// Mirror the increment path: stale links are tolerated.
		return nil
	}
	return ErrUseCountUnderflow
}
