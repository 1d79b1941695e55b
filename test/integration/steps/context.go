// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/household-ledger/backend/internal/application/adapter"
	"github.com/household-ledger/backend/internal/application/usecase/auth"
	"github.com/household-ledger/backend/internal/application/usecase/debt"
	"github.com/household-ledger/backend/internal/application/usecase/statistics"
	"github.com/household-ledger/backend/internal/application/usecase/transaction"
	"github.com/household-ledger/backend/internal/application/usecase/transfer"
	"github.com/household-ledger/backend/internal/application/usecase/wallet"
	"github.com/household-ledger/backend/internal/infra/server/router"
	"github.com/household-ledger/backend/internal/integration/adapters"
	"github.com/household-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/household-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/household-ledger/backend/internal/integration/persistence"
	"github.com/household-ledger/backend/internal/integration/persistence/model"
	"github.com/household-ledger/backend/test/integration/mock"
)

const (
	testJWTSecret = "test-jwt-secret-key-for-testing-purposes"
	testJWTIssuer = "household-ledger"
)

// seedDate is the calendar day used for all seeded movements. It is a Friday.
var seedDate = time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

var (
	serverInit       sync.Once
	portInit         sync.Once
	testDB           *mock.Db
	testRedis        *redis.Client
	testServerPort   int
	testTokenService adapter.TokenService
)

type testContext struct {
	uri           string
	headers       map[string]string
	client        *http.Client
	response      *response
	db            *mock.Db
	redis         *redis.Client
	accessToken   string
	refreshToken  string
	currentUserID uuid.UUID
	walletIDs     map[string]uuid.UUID
	lastID        uuid.UUID
}

type response struct {
	status int
	raw    []byte
	body   any
}

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
	})
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:    fmt.Sprintf("http://localhost:%d", testServerPort),
		client: &http.Client{Timeout: 10 * time.Second},
		db: mock.NewDb(map[string]any{
			"users":        &model.UserModel{},
			"wallets":      &model.WalletModel{},
			"transactions": &model.TransactionModel{},
			"debt_records": &model.DebtRecordModel{},
		}),
		redis: mock.NewRedis(),
	}

	testDB = test.db
	testRedis = test.redis

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Data setup steps
	ctx.Given(`^a user exists with email "([^"]*)" and password "([^"]*)"$`, test.aUserExistsWithEmailAndPassword)
	ctx.Given(`^I am logged in as "([^"]*)"$`, test.iAmLoggedInAs)
	ctx.Given(`^a wallet named "([^"]*)" exists with initial balance "([^"]*)"$`, test.aWalletExists)
	ctx.Given(`^an? "([^"]*)" of "([^"]*)" in category "([^"]*)" exists in wallet "([^"]*)"$`, test.aTransactionExists)
	ctx.Given(`^an? "([^"]*)" of "([^"]*)" in category "([^"]*)" from store "([^"]*)" exists in wallet "([^"]*)"$`, test.aTransactionWithStoreExists)
	ctx.Given(`^a "([^"]*)" record of "([^"]*)" for "([^"]*)" exists in wallet "([^"]*)"$`, test.aDebtRecordExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentUserID = uuid.Nil
	t.walletIDs = make(map[string]uuid.UUID)
	t.lastID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	if t.redis != nil {
		_ = mock.ClearRedis(t.redis)
	}
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			userRepo := persistence.NewUserRepository(testDB.DbConn)
			walletRepo := persistence.NewWalletRepository(testDB.DbConn)
			transactionRepo := persistence.NewTransactionRepository(testDB.DbConn)
			debtRepo := persistence.NewDebtRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, testJWTIssuer, testRedis)
			testTokenService = tokenService

			// Create auth use cases
			registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
			loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutUserUseCase(tokenService)

			// Create wallet use cases
			createWalletUseCase := wallet.NewCreateWalletUseCase(walletRepo)
			listWalletsUseCase := wallet.NewListWalletsUseCase(walletRepo, transactionRepo, debtRepo)
			getWalletBalanceUseCase := wallet.NewGetWalletBalanceUseCase(walletRepo, transactionRepo, debtRepo)
			updateWalletUseCase := wallet.NewUpdateWalletUseCase(walletRepo, transactionRepo, debtRepo)
			deleteWalletUseCase := wallet.NewDeleteWalletUseCase(walletRepo, transactionRepo, debtRepo)

			// Create transaction use cases
			createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, walletRepo)
			listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo)
			updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, walletRepo)
			deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

			// Create transfer use case
			executeTransferUseCase := transfer.NewExecuteTransferUseCase(walletRepo, transactionRepo)

			// Create debt use cases
			createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, walletRepo)
			listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo)
			listPeopleUseCase := debt.NewListPeopleUseCase(debtRepo)
			updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo, walletRepo)
			deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)
			resolvePersonUseCase := debt.NewResolvePersonUseCase(debtRepo, walletRepo)
			deletePersonUseCase := debt.NewDeletePersonUseCase(debtRepo)

			// Create statistics use cases
			getTotalsUseCase := statistics.NewGetTotalsUseCase(transactionRepo)
			getByCategoryUseCase := statistics.NewGetByCategoryUseCase(transactionRepo)
			getByStoreUseCase := statistics.NewGetByStoreUseCase(transactionRepo)
			getMonthlyUseCase := statistics.NewGetMonthlyUseCase(transactionRepo)
			getWeekdayHeatmapUseCase := statistics.NewGetWeekdayHeatmapUseCase(transactionRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			})

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			walletController := controller.NewWalletController(
				createWalletUseCase,
				listWalletsUseCase,
				getWalletBalanceUseCase,
				updateWalletUseCase,
				deleteWalletUseCase,
			)

			transactionController := controller.NewTransactionController(
				createTransactionUseCase,
				listTransactionsUseCase,
				updateTransactionUseCase,
				deleteTransactionUseCase,
			)

			transferController := controller.NewTransferController(executeTransferUseCase)

			debtController := controller.NewDebtController(
				createDebtUseCase,
				listDebtsUseCase,
				listPeopleUseCase,
				updateDebtUseCase,
				deleteDebtUseCase,
				resolvePersonUseCase,
				deletePersonUseCase,
			)

			statisticsController := controller.NewStatisticsController(
				getTotalsUseCase,
				getByCategoryUseCase,
				getByStoreUseCase,
				getMonthlyUseCase,
				getWeekdayHeatmapUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService)

			r := router.NewRouter(
				healthController,
				authController,
				walletController,
				transactionController,
				transferController,
				debtController,
				statisticsController,
				loginRateLimiter,
				authMiddleware,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, "Test User")
}

func (t *testContext) createUser(email, password, name string) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:           userID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs ensures the user exists and issues a real token pair for
// them, so the refresh token is allowlisted the same way a login would.
func (t *testContext) iAmLoggedInAs(email string) error {
	var userModel model.UserModel
	if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
		if err := t.createUser(email, "SecurePass123!", "Test User"); err != nil {
			return err
		}
		if err := t.db.DbConn.Where("email = ?", email).First(&userModel).Error; err != nil {
			return fmt.Errorf("user not found after creation: %w", err)
		}
	}
	t.currentUserID = userModel.ID

	if testTokenService == nil {
		return errors.New("token service not initialized, is the server running?")
	}

	pair, err := testTokenService.GenerateTokenPair(context.Background(), userModel.ID, email)
	if err != nil {
		return fmt.Errorf("failed to generate token pair: %w", err)
	}
	t.accessToken = pair.AccessToken
	t.refreshToken = pair.RefreshToken
	return nil
}

func (t *testContext) aWalletExists(name, initialBalance string) error {
	balance, err := decimal.NewFromString(initialBalance)
	if err != nil {
		return fmt.Errorf("invalid initial balance '%s': %w", initialBalance, err)
	}

	walletID := uuid.New()
	t.walletIDs[name] = walletID

	now := time.Now().UTC()
	walletModel := &model.WalletModel{
		ID:             walletID,
		UserID:         t.currentUserID,
		Name:           name,
		Color:          "#6366F1",
		InitialBalance: balance,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	return t.db.DbConn.Create(walletModel).Error
}

func (t *testContext) aTransactionExists(kind, amount, category, walletName string) error {
	return t.seedTransaction(kind, amount, category, "", walletName)
}

func (t *testContext) aTransactionWithStoreExists(kind, amount, category, store, walletName string) error {
	return t.seedTransaction(kind, amount, category, store, walletName)
}

func (t *testContext) seedTransaction(kind, amount, category, store, walletName string) error {
	walletID, ok := t.walletIDs[walletName]
	if !ok {
		return fmt.Errorf("wallet '%s' has not been seeded", walletName)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	transactionID := uuid.New()
	t.lastID = transactionID

	now := time.Now().UTC()
	transactionModel := &model.TransactionModel{
		ID:        transactionID,
		UserID:    t.currentUserID,
		WalletID:  walletID,
		Kind:      kind,
		Amount:    value,
		Category:  category,
		Date:      seedDate,
		Store:     store,
		CreatedAt: now,
		UpdatedAt: now,
	}

	return t.db.DbConn.Create(transactionModel).Error
}

func (t *testContext) aDebtRecordExists(kind, amount, personName, walletName string) error {
	walletID, ok := t.walletIDs[walletName]
	if !ok {
		return fmt.Errorf("wallet '%s' has not been seeded", walletName)
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount '%s': %w", amount, err)
	}

	recordID := uuid.New()
	t.lastID = recordID

	now := time.Now().UTC()
	recordModel := &model.DebtRecordModel{
		ID:         recordID,
		UserID:     t.currentUserID,
		WalletID:   walletID,
		PersonName: personName,
		Kind:       kind,
		Amount:     value,
		Date:       seedDate,
		Time:       "10:00",
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return t.db.DbConn.Create(recordModel).Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{last_id}}", t.lastID.String())

	for name, id := range t.walletIDs {
		content = strings.ReplaceAll(content, "{{wallet:"+name+"}}", id.String())
	}

	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
		raw:    bodyBytes,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
		return nil
	}
	t.response.body = responseBody

	// Capture identifiers and tokens so later steps can reference them
	if idStr, ok := responseBody["id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}
	if idStr, ok := responseBody["outgoing_id"].(string); ok {
		if id, err := uuid.Parse(idStr); err == nil {
			t.lastID = id
		}
	}
	if token, ok := responseBody["access_token"].(string); ok && token != "" {
		t.accessToken = token
	}
	if token, ok := responseBody["refresh_token"].(string); ok && token != "" {
		t.refreshToken = token
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(expected string) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if !strings.Contains(string(t.response.raw), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(t.response.raw))
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	value := getFieldValue(t.response.body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}

	expectedValue = t.replacePlaceholders(expectedValue)
	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	if getFieldValue(t.response.body, field) == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, t.response.body)
	}
	return nil
}

// theDbShouldContainObjectsInTheTable counts live rows only, so soft-deleted
// records do not show up.
func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	slicePtr := newModelSlice(entity)
	if err := t.db.DbConn.Find(slicePtr.Interface()).Error; err != nil {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	slicePtr := newModelSlice(entity)
	query := t.db.DbConn
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}

	if err := query.Find(slicePtr.Interface()).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	count := slicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func newModelSlice(entity any) reflect.Value {
	entityType := reflect.TypeOf(entity).Elem()
	entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
	slicePtr := reflect.New(entitySlice.Type())
	slicePtr.Elem().Set(entitySlice)
	return slicePtr
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
