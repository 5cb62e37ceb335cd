//go:build e2e

package e2e

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
)

// FakeAuthority stands in for the SkiData pricing and device-status services.
// Unknown products price at the default; unknown devices are connected and free.
type FakeAuthority struct {
	server *httptest.Server

	mu          sync.Mutex
	rejections  map[string]string
	outages     map[string]bool
	devices     map[string]deviceState
	kioskSlots  map[string][]map[string]any
	priceCalls  int
	unauthCalls int
}

type deviceState struct {
	Connected bool
	Allocated bool
}

func NewFakeAuthority() *FakeAuthority {
	f := &FakeAuthority{
		rejections: map[string]string{},
		outages:    map[string]bool{},
		devices:    map[string]deviceState{},
		kioskSlots: map[string][]map[string]any{},
	}

	r := gin.New()
	r.Use(f.requireBearer)
	r.POST("/resorts/:resortId/prices", f.price)
	r.GET("/devices/:deviceId/status", f.deviceStatus)
	r.GET("/resorts/:resortId/kiosks/:kioskId/slots", f.slots)
	f.server = httptest.NewServer(r)
	return f
}

func (f *FakeAuthority) URL() string { return f.server.URL }

func (f *FakeAuthority) Close() { f.server.Close() }

func (f *FakeAuthority) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejections = map[string]string{}
	f.outages = map[string]bool{}
	f.devices = map[string]deviceState{}
	f.kioskSlots = map[string][]map[string]any{}
	f.priceCalls = 0
	f.unauthCalls = 0
}

// RejectProduct makes the authority answer 422 with msg for the product.
func (f *FakeAuthority) RejectProduct(productID, msg string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rejections[productID] = msg
}

// FailProduct makes the authority answer 503 for the product.
func (f *FakeAuthority) FailProduct(productID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.outages[productID] = true
}

func (f *FakeAuthority) SetDevice(serial string, connected, allocated bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.devices[strings.ToUpper(serial)] = deviceState{Connected: connected, Allocated: allocated}
}

// SetKioskSlots publishes slot states for a kiosk; statuses[i] belongs to slot i+1.
func (f *FakeAuthority) SetKioskSlots(kioskID string, statuses ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	slots := make([]map[string]any, len(statuses))
	for i, st := range statuses {
		slots[i] = map[string]any{
			"slotNumber":  i + 1,
			"status":      st,
			"location":    "row A",
			"deviceId":    "KS-" + string(rune('A'+i)),
			"lastUpdated": "2026-12-24T08:00:00Z",
		}
	}
	f.kioskSlots[kioskID] = slots
}

func (f *FakeAuthority) PriceCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.priceCalls
}

func (f *FakeAuthority) UnauthenticatedCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.unauthCalls
}

func (f *FakeAuthority) requireBearer(c *gin.Context) {
	if !strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
		f.mu.Lock()
		f.unauthCalls++
		f.mu.Unlock()
		c.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	c.Next()
}

func (f *FakeAuthority) price(c *gin.Context) {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bad request"})
		return
	}

	f.mu.Lock()
	f.priceCalls++
	msg, rejected := f.rejections[body.ProductID]
	down := f.outages[body.ProductID]
	f.mu.Unlock()

	switch {
	case down:
		c.Status(http.StatusServiceUnavailable)
	case rejected:
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": msg})
	default:
		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"amountNet":   "50.00",
			"amountGross": "54.05",
			"currency":    "CHF",
			"taxDetails": []gin.H{{
				"taxName":      "Value added tax",
				"taxShortName": "VAT",
				"taxRate":      "0.081",
				"taxAmount":    "4.05",
				"sortOrder":    0,
			}},
		})
	}
}

func (f *FakeAuthority) deviceStatus(c *gin.Context) {
	f.mu.Lock()
	st, ok := f.devices[strings.ToUpper(c.Param("deviceId"))]
	f.mu.Unlock()
	if !ok {
		st = deviceState{Connected: true}
	}
	c.JSON(http.StatusOK, gin.H{
		"deviceId":  c.Param("deviceId"),
		"connected": st.Connected,
		"battery":   90,
		"allocated": st.Allocated,
	})
}

func (f *FakeAuthority) slots(c *gin.Context) {
	f.mu.Lock()
	slots, ok := f.kioskSlots[c.Param("kioskId")]
	f.mu.Unlock()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "unknown kiosk"})
		return
	}
	c.JSON(http.StatusOK, slots)
}
