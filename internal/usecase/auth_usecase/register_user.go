package auth

import (
	"context"
	"errors"

	"shopcart/internal/domain/model"
	"shopcart/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 会員登録の入力
type RegisterUserInput struct {
	Username        string
	Password        string
	ConfirmPassword string
}

// 会員登録の出力
type RegisterUserOutput struct {
	User model.User
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

var (
	// 入力が不正
	ErrUsernameRequired = errors.New("username required")
	ErrPasswordTooShort = errors.New("password too short")
	ErrPasswordMismatch = errors.New("password and confirmation do not match")

	// 競合
	ErrUsernameAlreadyExists = errors.New("username already exists")
)

// 平文パスワードからハッシュへ。
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 登録入力のチェック（validatorパッケージが実装）
type RegisterValidator interface {
	ValidateRegister(username string, password string, confirmPassword string) error
}

// RegisterUserUsecaseは会員登録の処理。
type RegisterUserUsecase struct {
	tx        repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    PasswordHasher
	validator RegisterValidator
	log       Logger
}

// DI
func NewRegisterUserUsecase(
	tx repository.TransactionManager,
	userRepo repository.UserRepository,
	hasher PasswordHasher,
	validator RegisterValidator,
	log Logger,
) *RegisterUserUsecase {
	return &RegisterUserUsecase{
		tx:        tx,
		userRepo:  userRepo,
		hasher:    hasher,
		validator: validator,
		log:       log,
	}
}

// 会員登録実行
// カート作成とユーザー作成は1トランザクション。途中で失敗したらカートも残らない。
func (u *RegisterUserUsecase) Execute(ctx context.Context, in RegisterUserInput) (RegisterUserOutput, error) {
	var out RegisterUserOutput

	if err := u.validator.ValidateRegister(in.Username, in.Password, in.ConfirmPassword); err != nil {
		u.log.Infof("RegisterUserUsecase::Execute - invalid input for %s: %v", in.Username, err)
		return out, err
	}

	// username重複チェック
	existing, err := u.userRepo.FindByUsername(ctx, in.Username)
	if err == nil && existing != nil {
		u.log.Infof("RegisterUserUsecase::Execute - username %s already exists", in.Username)
		return out, ErrUsernameAlreadyExists
	}
	if err != nil && !errors.Is(err, repository.ErrUserNotFound) {
		u.log.Errorf("RegisterUserUsecase::Execute - error creating user with name %s: %v", in.Username, err)
		return out, err
	}

	// パスワードをハッシュ化
	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		u.log.Errorf("RegisterUserUsecase::Execute - error creating user with name %s: %v", in.Username, err)
		return out, err
	}

	var created model.User

	err = u.tx.WithinTx(ctx, func(r repository.TxRepos) error {
		// 先に空のカート
		cart := model.NewCart()
		if err := r.Carts().Create(ctx, &cart); err != nil {
			return err
		}

		user := &model.User{
			Username:     in.Username,
			PasswordHash: hashed, // ハッシュを保存（平文は保存しない）
			CartID:       cart.ID,
		}
		if err := r.Users().Create(ctx, user); err != nil {
			return err
		}

		// カートからユーザーへの参照
		if err := r.Carts().AttachUser(ctx, cart.ID, user.ID); err != nil {
			return err
		}
		cart.UserID = user.ID
		user.Cart = cart

		created = *user
		return nil
	})
	if errors.Is(err, repository.ErrDuplicateUsername) {
		u.log.Infof("RegisterUserUsecase::Execute - username %s already exists", in.Username)
		return out, ErrUsernameAlreadyExists
	}
	if err != nil {
		u.log.Errorf("RegisterUserUsecase::Execute - error creating user with name %s: %v", in.Username, err)
		return out, err
	}

	u.log.Infof("RegisterUserUsecase::Execute - create user successful with username %s", created.Username)

	// PasswordHashはjson:"-"だが、返すときは空にして漏洩防止
	created.PasswordHash = ""
	out.User = created
	return out, nil
}

// DI
func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost}
}

// bcryptでハッシュ化
func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}

	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

// DI
func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

// 平文(plain)をbcryptで比較
func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
