package query

import (
	"context"

	"pickfoo-owner/internal/domain"
)

// RestaurantAPI is the slice of the backend client the restaurant queries
// need. *api.Client satisfies it.
type RestaurantAPI interface {
	MyRestaurants(ctx context.Context) ([]domain.Restaurant, error)
	CreateRestaurant(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error)
	UpdateRestaurant(ctx context.Context, id string, fields interface{}) (*domain.Restaurant, error)
	DeleteRestaurant(ctx context.Context, id string) error
	SubmitForVerification(ctx context.Context, id string) (*domain.Restaurant, error)
}

type Restaurants struct {
	API   RestaurantAPI
	Cache *Cache
}

func NewRestaurants(api RestaurantAPI, cache *Cache) *Restaurants {
	return &Restaurants{API: api, Cache: cache}
}

// List returns the owner's restaurants, served from cache when present.
func (q *Restaurants) List(ctx context.Context) ([]domain.Restaurant, error) {
	if v, ok := q.Cache.get(KeyMyRestaurants); ok {
		return v.([]domain.Restaurant), nil
	}
	list, err := q.API.MyRestaurants(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyMyRestaurants, list)
	return list, nil
}

func (q *Restaurants) Create(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error) {
	created, err := q.API.CreateRestaurant(ctx, r)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyRestaurants)
	return created, nil
}

func (q *Restaurants) Update(ctx context.Context, id string, fields interface{}) (*domain.Restaurant, error) {
	updated, err := q.API.UpdateRestaurant(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyRestaurants)
	return updated, nil
}

func (q *Restaurants) Delete(ctx context.Context, id string) error {
	if err := q.API.DeleteRestaurant(ctx, id); err != nil {
		return err
	}
	q.Cache.Invalidate(KeyMyRestaurants)
	return nil
}

func (q *Restaurants) SubmitForVerification(ctx context.Context, id string) (*domain.Restaurant, error) {
	updated, err := q.API.SubmitForVerification(ctx, id)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyRestaurants)
	return updated, nil
}

// ToggleOpen flips the open-for-orders flag.
func (q *Restaurants) ToggleOpen(ctx context.Context, r *domain.Restaurant) (*domain.Restaurant, error) {
	return q.Update(ctx, r.ID, map[string]bool{"isOpen": !r.IsOpen})
}

type MenuAPI interface {
	MyMenu(ctx context.Context) ([]domain.MenuItem, error)
	CreateMenuItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error)
	UpdateMenuItem(ctx context.Context, id string, fields interface{}) (*domain.MenuItem, error)
	DeleteMenuItem(ctx context.Context, id string) error
	AssignRestaurants(ctx context.Context, id string, restaurantIDs []string) (*domain.MenuItem, error)
}

type Menu struct {
	API   MenuAPI
	Cache *Cache
}

func NewMenu(api MenuAPI, cache *Cache) *Menu {
	return &Menu{API: api, Cache: cache}
}

func (q *Menu) List(ctx context.Context) ([]domain.MenuItem, error) {
	if v, ok := q.Cache.get(KeyMyMenu); ok {
		return v.([]domain.MenuItem), nil
	}
	list, err := q.API.MyMenu(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyMyMenu, list)
	return list, nil
}

func (q *Menu) Create(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	created, err := q.API.CreateMenuItem(ctx, item)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyMenu)
	return created, nil
}

func (q *Menu) Update(ctx context.Context, id string, fields interface{}) (*domain.MenuItem, error) {
	updated, err := q.API.UpdateMenuItem(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyMenu)
	return updated, nil
}

func (q *Menu) Delete(ctx context.Context, id string) error {
	if err := q.API.DeleteMenuItem(ctx, id); err != nil {
		return err
	}
	q.Cache.Invalidate(KeyMyMenu)
	return nil
}

func (q *Menu) AssignRestaurants(ctx context.Context, id string, restaurantIDs []string) (*domain.MenuItem, error) {
	updated, err := q.API.AssignRestaurants(ctx, id, restaurantIDs)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyMenu)
	return updated, nil
}

type CategoryAPI interface {
	MyCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, cat *domain.Category) (*domain.Category, error)
	UpdateCategory(ctx context.Context, id string, fields interface{}) (*domain.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type Categories struct {
	API   CategoryAPI
	Cache *Cache
}

func NewCategories(api CategoryAPI, cache *Cache) *Categories {
	return &Categories{API: api, Cache: cache}
}

func (q *Categories) List(ctx context.Context) ([]domain.Category, error) {
	if v, ok := q.Cache.get(KeyMyCategories); ok {
		return v.([]domain.Category), nil
	}
	list, err := q.API.MyCategories(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyMyCategories, list)
	return list, nil
}

func (q *Categories) Create(ctx context.Context, cat *domain.Category) (*domain.Category, error) {
	created, err := q.API.CreateCategory(ctx, cat)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyCategories)
	return created, nil
}

func (q *Categories) Update(ctx context.Context, id string, fields interface{}) (*domain.Category, error) {
	updated, err := q.API.UpdateCategory(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyCategories)
	return updated, nil
}

func (q *Categories) Delete(ctx context.Context, id string) error {
	if err := q.API.DeleteCategory(ctx, id); err != nil {
		return err
	}
	q.Cache.Invalidate(KeyMyCategories)
	return nil
}

type OrderAPI interface {
	MyOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error)
}

type Orders struct {
	API   OrderAPI
	Cache *Cache
}

func NewOrders(api OrderAPI, cache *Cache) *Orders {
	return &Orders{API: api, Cache: cache}
}

func (q *Orders) List(ctx context.Context) ([]domain.Order, error) {
	if v, ok := q.Cache.get(KeyMyOrders); ok {
		return v.([]domain.Order), nil
	}
	list, err := q.API.MyOrders(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyMyOrders, list)
	return list, nil
}

func (q *Orders) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	updated, err := q.API.UpdateOrderStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	q.Cache.Invalidate(KeyMyOrders)
	return updated, nil
}

type ReviewAPI interface {
	MyReviews(ctx context.Context) ([]domain.Review, error)
}

type Reviews struct {
	API   ReviewAPI
	Cache *Cache
}

func NewReviews(api ReviewAPI, cache *Cache) *Reviews {
	return &Reviews{API: api, Cache: cache}
}

func (q *Reviews) List(ctx context.Context) ([]domain.Review, error) {
	if v, ok := q.Cache.get(KeyMyReviews); ok {
		return v.([]domain.Review), nil
	}
	list, err := q.API.MyReviews(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyMyReviews, list)
	return list, nil
}

type TransactionAPI interface {
	MyTransactions(ctx context.Context) ([]domain.Transaction, error)
	TransactionStats(ctx context.Context) (*domain.TransactionStats, error)
}

type Transactions struct {
	API   TransactionAPI
	Cache *Cache
}

func NewTransactions(api TransactionAPI, cache *Cache) *Transactions {
	return &Transactions{API: api, Cache: cache}
}

func (q *Transactions) List(ctx context.Context) ([]domain.Transaction, error) {
	if v, ok := q.Cache.get(KeyMyTransactions); ok {
		return v.([]domain.Transaction), nil
	}
	list, err := q.API.MyTransactions(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyMyTransactions, list)
	return list, nil
}

func (q *Transactions) Stats(ctx context.Context) (*domain.TransactionStats, error) {
	if v, ok := q.Cache.get(KeyTransactionStats); ok {
		return v.(*domain.TransactionStats), nil
	}
	stats, err := q.API.TransactionStats(ctx)
	if err != nil {
		return nil, err
	}
	q.Cache.set(KeyTransactionStats, stats)
	return stats, nil
}
