package usecase

import (
	"context"
	"errors"
	"sort"

	"warehouse-api/internal/data/entity"
	"warehouse-api/internal/data/repository"
	"warehouse-api/internal/queue"
	"warehouse-api/pkg/listquery"

	"github.com/google/uuid"
)

// In-memory repository fakes. They implement the minimal semantics the
// services depend on; listing returns everything in insertion order and
// ignores keyword and sort.

type fakeUserRepo struct {
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) List(_ context.Context, _ listquery.Params) ([]*entity.User, int64, error) {
	users := make([]*entity.User, 0, len(f.users))
	for _, user := range f.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Email < users[j].Email })
	return users, int64(len(users)), nil
}

func (f *fakeUserRepo) UpdateProfile(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) Verify(_ context.Context, id uuid.UUID, passwordHash string) (bool, error) {
	user, ok := f.users[id]
	if !ok || user.IsVerified {
		return false, nil
	}
	user.PasswordHash = &passwordHash
	user.IsVerified = true
	return true, nil
}

func (f *fakeUserRepo) UpdatePicture(_ context.Context, id uuid.UUID, picture *string) error {
	user, ok := f.users[id]
	if !ok {
		return errors.New("user not found")
	}
	user.ProfilePicture = picture
	return nil
}

type fakeWarehouseRepo struct {
	warehouses map[uuid.UUID]*entity.Warehouse
}

func newFakeWarehouseRepo() *fakeWarehouseRepo {
	return &fakeWarehouseRepo{warehouses: make(map[uuid.UUID]*entity.Warehouse)}
}

func (f *fakeWarehouseRepo) Create(_ context.Context, warehouse *entity.Warehouse) error {
	f.warehouses[warehouse.ID] = warehouse
	return nil
}

func (f *fakeWarehouseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Warehouse, error) {
	return f.warehouses[id], nil
}

func (f *fakeWarehouseRepo) FindAll(_ context.Context) ([]*entity.Warehouse, error) {
	all := make([]*entity.Warehouse, 0, len(f.warehouses))
	for _, warehouse := range f.warehouses {
		all = append(all, warehouse)
	}
	return all, nil
}

func (f *fakeWarehouseRepo) List(_ context.Context, _ listquery.Params) ([]*entity.Warehouse, int64, error) {
	all, _ := f.FindAll(context.Background())
	return all, int64(len(all)), nil
}

func (f *fakeWarehouseRepo) Update(_ context.Context, warehouse *entity.Warehouse) error {
	f.warehouses[warehouse.ID] = warehouse
	return nil
}

func (f *fakeWarehouseRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.warehouses, id)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.ProductCategory
	inUse      map[uuid.UUID]bool
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{
		categories: make(map[uuid.UUID]*entity.ProductCategory),
		inUse:      make(map[uuid.UUID]bool),
	}
}

func (f *fakeCategoryRepo) Create(_ context.Context, category *entity.ProductCategory) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.ProductCategory, error) {
	return f.categories[id], nil
}

func (f *fakeCategoryRepo) List(_ context.Context, _ listquery.Params) ([]*entity.ProductCategory, int64, error) {
	all := make([]*entity.ProductCategory, 0, len(f.categories))
	for _, category := range f.categories {
		all = append(all, category)
	}
	return all, int64(len(all)), nil
}

func (f *fakeCategoryRepo) Update(_ context.Context, category *entity.ProductCategory) error {
	f.categories[category.ID] = category
	return nil
}

func (f *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	if f.inUse[id] {
		return repository.ErrCategoryInUse
	}
	delete(f.categories, id)
	return nil
}

type fakeProductRepo struct {
	products  map[uuid.UUID]*entity.Product
	createErr error
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	return f.products[id], nil
}

func (f *fakeProductRepo) List(_ context.Context, _ listquery.Params, categoryID *uuid.UUID) ([]*entity.Product, int64, error) {
	all := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		if categoryID != nil && product.CategoryID != *categoryID {
			continue
		}
		all = append(all, product)
	}
	return all, int64(len(all)), nil
}

func (f *fakeProductRepo) Update(_ context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeProductRepo) UpdateImage(_ context.Context, id uuid.UUID, image string) error {
	product, ok := f.products[id]
	if !ok {
		return errors.New("product not found")
	}
	product.Image = image
	return nil
}

func (f *fakeProductRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

// fakeLocationRepo validates against a fixed set of province/city/district
// triples keyed as "province|city|district".
type fakeLocationRepo struct {
	triples map[string]bool
}

func newFakeLocationRepo(triples ...[3]string) *fakeLocationRepo {
	f := &fakeLocationRepo{triples: make(map[string]bool)}
	for _, t := range triples {
		f.triples[t[0]+"|"+t[1]+"|"+t[2]] = true
	}
	return f
}

func (f *fakeLocationRepo) FindProvinces(_ context.Context) ([]*entity.Province, error) {
	return []*entity.Province{{ID: 1, Name: "DKI Jakarta"}}, nil
}

func (f *fakeLocationRepo) FindCitiesByProvince(_ context.Context, provinceID int64) ([]*entity.City, error) {
	return []*entity.City{{ID: 10, ProvinceID: provinceID, Name: "Jakarta Selatan"}}, nil
}

func (f *fakeLocationRepo) FindDistrictsByCity(_ context.Context, cityID int64) ([]*entity.District, error) {
	return []*entity.District{{ID: 100, CityID: cityID, Name: "Kebayoran Baru"}}, nil
}

func (f *fakeLocationRepo) LocationExists(_ context.Context, province, city, district string) (bool, error) {
	return f.triples[province+"|"+city+"|"+district], nil
}

type fakeBlobStore struct {
	blobs  map[string][]byte
	putErr error
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{blobs: make(map[string][]byte)}
}

func (f *fakeBlobStore) Put(_ context.Context, name string, data []byte, _ string) error {
	if f.putErr != nil {
		return f.putErr
	}
	f.blobs[name] = data
	return nil
}

func (f *fakeBlobStore) Get(_ context.Context, name string) ([]byte, error) {
	data, ok := f.blobs[name]
	if !ok {
		return nil, errors.New("blob not found")
	}
	return data, nil
}

func (f *fakeBlobStore) Delete(_ context.Context, name string) error {
	delete(f.blobs, name)
	return nil
}

func (f *fakeBlobStore) Exists(_ context.Context, name string) bool {
	_, ok := f.blobs[name]
	return ok
}

func (f *fakeBlobStore) URL(name string) string {
	return "/images/" + name
}

// fakePublisher delivers published events on a channel so tests can wait for
// the async publish without sleeping.
type fakePublisher struct {
	events chan queue.VerificationRequestedEvent
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{events: make(chan queue.VerificationRequestedEvent, 4)}
}

func (f *fakePublisher) PublishVerificationRequested(_ context.Context, event queue.VerificationRequestedEvent) error {
	f.events <- event
	return nil
}

func (f *fakePublisher) Close() {}

func newTestRepository() *repository.Repository {
	return &repository.Repository{
		User:      newFakeUserRepo(),
		Warehouse: newFakeWarehouseRepo(),
		Category:  newFakeCategoryRepo(),
		Product:   newFakeProductRepo(),
		Location:  newFakeLocationRepo([3]string{"DKI Jakarta", "Jakarta Selatan", "Kebayoran Baru"}),
	}
}
