package user_test

import (
	stderrors "errors"
	"log/slog"
	"os"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	errors "github.com/frahmantamala/asset-inventory/internal"
	"github.com/frahmantamala/asset-inventory/internal/auth"
	"github.com/frahmantamala/asset-inventory/internal/user"
)

func TestUserService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "User Service Suite")
}

// mockUserRepository implements user.Repository in memory.
type mockUserRepository struct {
	users       map[string]*user.User
	createError error
	updateError error
}

func newMockUserRepository() *mockUserRepository {
	return &mockUserRepository{users: make(map[string]*user.User)}
}

func (m *mockUserRepository) Create(u *user.User) error {
	if m.createError != nil {
		return m.createError
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) GetByID(id string) (*user.User, error) {
	u, exists := m.users[id]
	if !exists {
		return nil, errors.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetAll() ([]*user.User, error) {
	result := make([]*user.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, u)
	}
	return result, nil
}

func (m *mockUserRepository) Update(u *user.User) error {
	if m.updateError != nil {
		return m.updateError
	}
	m.users[u.ID] = u
	return nil
}

func (m *mockUserRepository) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	for _, u := range m.users {
		if u.Username == username || u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// plainHasher avoids bcrypt cost in tests.
type plainHasher struct{}

func (plainHasher) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

var _ = Describe("UserService", func() {
	var (
		service  *user.Service
		mockRepo *mockUserRepository
		logger   *slog.Logger
	)

	BeforeEach(func() {
		mockRepo = newMockUserRepository()
		logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = user.NewService(mockRepo, plainHasher{}, logger)
	})

	Describe("Register", func() {
		It("should create an active account with a generated id", func() {
			u, err := service.Register(user.RegisterDTO{
				Username: "jdoe",
				Email:    "jdoe@itassets.com",
				Password: "secret123",
				Role:     "manager",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(u.ID).ToNot(BeEmpty())
			Expect(u.IsActive).To(BeTrue())
			Expect(u.Role).To(Equal(auth.RoleManager))
			Expect(u.PasswordHash).To(Equal("hashed:secret123"))
		})

		It("should default the role to user", func() {
			u, err := service.Register(user.RegisterDTO{
				Username: "jdoe",
				Email:    "jdoe@itassets.com",
				Password: "secret123",
			})

			Expect(err).ToNot(HaveOccurred())
			Expect(u.Role).To(Equal(auth.RoleUser))
		})

		It("should reject a duplicate username or email", func() {
			_, err := service.Register(user.RegisterDTO{
				Username: "jdoe", Email: "jdoe@itassets.com", Password: "secret123",
			})
			Expect(err).ToNot(HaveOccurred())

			_, err = service.Register(user.RegisterDTO{
				Username: "jdoe", Email: "other@itassets.com", Password: "secret123",
			})

			Expect(stderrors.Is(err, errors.ErrDuplicateUser)).To(BeTrue())
		})

		It("should reject invalid input", func() {
			_, err := service.Register(user.RegisterDTO{
				Username: "jd", Email: "not-an-email", Password: "123",
			})

			Expect(err).To(HaveOccurred())
			appErr, ok := errors.IsAppError(err)
			Expect(ok).To(BeTrue())
			Expect(appErr.Type).To(Equal(errors.ErrorTypeValidation))
		})

		It("should reject an unknown role", func() {
			_, err := service.Register(user.RegisterDTO{
				Username: "jdoe", Email: "jdoe@itassets.com", Password: "secret123", Role: "root",
			})

			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateProfile", func() {
		var existing *user.User

		BeforeEach(func() {
			var err error
			existing, err = service.Register(user.RegisterDTO{
				Username: "jdoe", Email: "jdoe@itassets.com", Password: "secret123",
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should update only the provided fields", func() {
			dept := "Finance"

			updated, err := service.UpdateProfile(existing.ID, user.UpdateProfileDTO{Department: &dept})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Department).To(Equal("Finance"))
			Expect(updated.Email).To(Equal("jdoe@itassets.com"))
		})

		It("should rehash a changed password", func() {
			newPassword := "evenmoresecret"

			updated, err := service.UpdateProfile(existing.ID, user.UpdateProfileDTO{Password: &newPassword})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.PasswordHash).To(Equal("hashed:evenmoresecret"))
		})

		It("should reject an invalid email", func() {
			bad := "nope"

			_, err := service.UpdateProfile(existing.ID, user.UpdateProfileDTO{Email: &bad})

			Expect(err).To(HaveOccurred())
		})

		It("should report not found for an unknown id", func() {
			dept := "Finance"

			_, err := service.UpdateProfile("ghost", user.UpdateProfileDTO{Department: &dept})

			Expect(stderrors.Is(err, errors.ErrUserNotFound)).To(BeTrue())
		})
	})

	Describe("AdminUpdate", func() {
		var existing *user.User

		BeforeEach(func() {
			var err error
			existing, err = service.Register(user.RegisterDTO{
				Username: "jdoe", Email: "jdoe@itassets.com", Password: "secret123",
			})
			Expect(err).ToNot(HaveOccurred())
		})

		It("should promote a user", func() {
			role := "admin"

			updated, err := service.AdminUpdate(existing.ID, user.AdminUpdateUserDTO{Role: &role})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.Role).To(Equal(auth.RoleAdmin))
		})

		It("should deactivate an account instead of deleting it", func() {
			inactive := false

			updated, err := service.AdminUpdate(existing.ID, user.AdminUpdateUserDTO{IsActive: &inactive})

			Expect(err).ToNot(HaveOccurred())
			Expect(updated.IsActive).To(BeFalse())

			still, err := service.GetByID(existing.ID)
			Expect(err).ToNot(HaveOccurred())
			Expect(still.IsActive).To(BeFalse())
		})

		It("should reject an unknown role", func() {
			role := "root"

			_, err := service.AdminUpdate(existing.ID, user.AdminUpdateUserDTO{Role: &role})

			Expect(err).To(HaveOccurred())
		})
	})
})
