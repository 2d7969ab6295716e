package controllers

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/url"
	"os"
	"sort"
	"strings"

	"github.com/Genrihbag/med-alias/middleware"
	models "github.com/Genrihbag/med-alias/models/postgres"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type guestRequest struct {
	Name string `json:"name"`
}

// @Summary Creates a guest identity
// @Description Mints a stable (id, name) pair plus a bearer token; no password involved
// @Tags users
// @Accept json
// @Produce json
// @Param request body guestRequest true "Display name"
// @Success 200 {object} object{id=string,name=string,token=string}
// @Failure 400 {object} object{error=string}
// @Failure 500 {object} object{error=string}
// @Router /api/users/guest [post]
func CreateGuest(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req guestRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Name) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
			return
		}
		user := models.User{Name: strings.TrimSpace(req.Name)}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
			return
		}
		token, err := middleware.GenerateToken(user.Id, user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error issuing token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": user.Id, "name": user.Name, "token": token})
	}
}

type telegramValidateRequest struct {
	InitData string `json:"initData"`
}

type telegramUser struct {
	Id        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username"`
}

// buildTelegramCheckString sorts the non-hash query pairs as key=value lines.
func buildTelegramCheckString(values url.Values) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		if k != "hash" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	lines := make([]string, 0, len(keys))
	for _, k := range keys {
		lines = append(lines, k+"="+values.Get(k))
	}
	return strings.Join(lines, "\n")
}

// verifyTelegramInitData checks the WebApp initData signature: the secret
// key is SHA256(botToken) and the hash is HMAC-SHA256 over the sorted
// check string.
func verifyTelegramInitData(botToken, initData string) (*telegramUser, bool) {
	values, err := url.ParseQuery(initData)
	if err != nil {
		return nil, false
	}
	hash := values.Get("hash")
	if hash == "" {
		return nil, false
	}

	secretKey := sha256.Sum256([]byte(botToken))
	mac := hmac.New(sha256.New, secretKey[:])
	mac.Write([]byte(buildTelegramCheckString(values)))
	computed := hex.EncodeToString(mac.Sum(nil))
	if !hmac.Equal([]byte(computed), []byte(hash)) {
		return nil, false
	}

	var user telegramUser
	if userJson := values.Get("user"); userJson != "" {
		if err := json.Unmarshal([]byte(userJson), &user); err != nil {
			// a valid signature over garbage is still garbage
			return nil, false
		}
	}
	return &user, true
}

// @Summary Validates Telegram WebApp initData
// @Description Verifies the Telegram signature and upserts the user; disabled unless TELEGRAM_BOT_TOKEN is set
// @Tags users
// @Accept json
// @Produce json
// @Param request body telegramValidateRequest true "Raw initData query string"
// @Success 200 {object} object{ok=bool,user=object,token=string}
// @Failure 400 {object} object{error=string}
// @Failure 401 {object} object{error=string}
// @Router /api/telegram/validate [post]
func TelegramValidate(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		botToken := os.Getenv("TELEGRAM_BOT_TOKEN")
		if botToken == "" {
			c.JSON(http.StatusNotFound, gin.H{"error": "telegram login disabled"})
			return
		}
		var req telegramValidateRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.InitData == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "initData required"})
			return
		}
		tgUser, ok := verifyTelegramInitData(botToken, req.InitData)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid initData"})
			return
		}

		name := strings.TrimSpace(tgUser.FirstName + " " + tgUser.LastName)
		if name == "" {
			name = tgUser.Username
		}
		user := models.User{TelegramId: tgUser.Id, Name: name}
		if tgUser.Id != 0 {
			// one row per Telegram account, refreshed on each login
			var existing models.User
			err := db.Where("telegram_id = ?", tgUser.Id).First(&existing).Error
			if err == nil {
				existing.Name = name
				db.Save(&existing)
				user = existing
			} else if err := db.Create(&user).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Error creating user"})
				return
			}
		}

		token, err := middleware.GenerateToken(user.Id, user.Name)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error issuing token"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "user": gin.H{"id": user.Id, "name": user.Name}, "token": token})
	}
}
