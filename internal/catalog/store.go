// Package catalog stores car makes and models and seeds them on first use.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"dealership/internal/models"

	"gorm.io/gorm"
)

var ErrMakeNotFound = errors.New("car make not found")

// Car — строка каталога в том виде, в каком её отдаёт /get_cars.
type Car struct {
	CarModel string         `json:"CarModel"`
	CarMake  string         `json:"CarMake"`
	Year     int            `json:"Year"`
	Type     models.CarType `json:"Type"`
}

type Store struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewStore(db *gorm.DB, log *slog.Logger) *Store {
	return &Store{db: db, log: log.With("component", "catalog")}
}

// ListCars возвращает все модели с названием марки. Если марок нет,
// сначала заливает стартовый каталог. Одновременные первые вызовы могут
// залить его дважды — блокировки здесь нет.
func (s *Store) ListCars(ctx context.Context) ([]Car, error) {
	db := s.db.WithContext(ctx)

	var count int64
	if err := db.Model(&models.CarMake{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("count car makes: %w", err)
	}
	s.log.Debug("car makes in db", "count", count)

	if count == 0 {
		if err := s.Populate(ctx); err != nil {
			return nil, err
		}
	}

	var carModels []models.CarModel
	if err := db.Joins("CarMake").Find(&carModels).Error; err != nil {
		return nil, fmt.Errorf("list car models: %w", err)
	}

	cars := make([]Car, 0, len(carModels))
	for _, m := range carModels {
		cars = append(cars, Car{
			CarModel: m.Name,
			CarMake:  m.CarMake.Name,
			Year:     m.Year,
			Type:     m.Type,
		})
	}
	return cars, nil
}

// Populate заливает стартовый каталог одной транзакцией.
func (s *Store) Populate(ctx context.Context) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txs := &Store{db: tx, log: s.log}
		for _, sm := range seedData {
			mk := models.CarMake{Name: sm.Name, Description: sm.Description, Country: sm.Country}
			if err := txs.CreateMake(ctx, &mk); err != nil {
				return err
			}
			for _, m := range sm.Models {
				cm := models.CarModel{CarMakeID: mk.ID, Name: m.Name, Type: m.Type, Year: m.Year}
				if err := txs.CreateModel(ctx, &cm); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("populate catalog: %w", err)
	}

	s.log.Info("catalog populated", "makes", len(seedData))
	return nil
}

func (s *Store) CreateMake(ctx context.Context, mk *models.CarMake) error {
	if err := s.db.WithContext(ctx).Create(mk).Error; err != nil {
		return fmt.Errorf("create car make: %w", err)
	}
	return nil
}

// CreateModel сохраняет модель; год вне [2015, 2023] отклоняется.
func (s *Store) CreateModel(ctx context.Context, m *models.CarModel) error {
	if err := s.db.WithContext(ctx).Omit("CarMake").Create(m).Error; err != nil {
		return fmt.Errorf("create car model: %w", err)
	}
	return nil
}

// DeleteMake удаляет марку вместе со всеми её моделями.
func (s *Store) DeleteMake(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("car_make_id = ?", id).Delete(&models.CarModel{}).Error; err != nil {
			return fmt.Errorf("delete models of make %d: %w", id, err)
		}
		res := tx.Delete(&models.CarMake{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete make %d: %w", id, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrMakeNotFound
		}
		return nil
	})
}

// ListMakes возвращает марки по алфавиту вместе с их моделями.
func (s *Store) ListMakes(ctx context.Context) ([]models.CarMake, error) {
	var makes []models.CarMake
	err := s.db.WithContext(ctx).
		Preload("Models", func(db *gorm.DB) *gorm.DB { return db.Order("id asc") }).
		Order("name asc").
		Find(&makes).Error
	if err != nil {
		return nil, fmt.Errorf("list car makes: %w", err)
	}
	return makes, nil
}
