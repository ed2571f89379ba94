package i18n

import "github.com/yemeknerede/internal/constants"

// catalogs 按语言组织的消息文案
var catalogs = map[string]map[string]string{
	constants.LocaleTrTR: {
		"error.bad_request":  "Geçersiz istek",
		"error.unauthorized": "Oturum doğrulanamadı",
		"error.forbidden":    "Bu işlem için yetkiniz yok",
		"error.not_found":    "Kayıt bulunamadı",
		"error.internal":     "Sunucu hatası, lütfen tekrar deneyin",

		"error.auth_header_missing": "Yetkilendirme başlığı eksik",
		"error.auth_header_invalid": "Yetkilendirme başlığı geçersiz",
		"error.token_invalid":       "Geçersiz oturum anahtarı",
		"error.token_revoked":       "Oturum anahtarı geçersiz kılındı, lütfen tekrar giriş yapın",
		"error.jwt_secret_missing":  "Sunucu oturum anahtarı yapılandırılmamış",
		"error.user_disabled":       "Hesabınız devre dışı bırakıldı",

		"error.login_too_many":         "Çok fazla giriş denemesi, %d saniye sonra tekrar deneyin",
		"error.rate_limited":           "Çok fazla istek, %d saniye sonra tekrar deneyin",
		"error.rate_limit_unavailable": "İstek sınırlayıcı şu anda kullanılamıyor",

		"error.invalid_credentials":     "E-posta veya şifre hatalı",
		"error.password_policy":         "Şifre güvenlik gereksinimlerini karşılamıyor",
		"error.password_invalid":        "Mevcut şifre hatalı",
		"error.password_change_failed":  "Şifre değiştirilemedi",
		"error.email_taken":             "Bu e-posta adresi zaten kayıtlı",
		"error.register_failed":         "Kayıt işlemi tamamlanamadı",
		"error.login_failed":            "Giriş yapılamadı",
		"error.captcha_required":        "Doğrulama kodu gerekli",
		"error.captcha_invalid":         "Doğrulama kodu hatalı",
		"error.captcha_unavailable":     "Doğrulama kodu servisi kullanılamıyor",
		"error.captcha_generate_failed": "Doğrulama kodu oluşturulamadı",
		"error.captcha_verify_failed":   "Doğrulama kodu kontrol edilemedi",

		"error.user_id_invalid":       "Kullanıcı kimliği geçersiz",
		"error.user_id_type_invalid":  "Kullanıcı kimliği çözümlenemedi",
		"error.admin_id_invalid":      "Yönetici kimliği geçersiz",
		"error.admin_id_type_invalid": "Yönetici kimliği çözümlenemedi",
		"error.user_not_found":        "Kullanıcı bulunamadı",
		"error.user_fetch_failed":     "Kullanıcılar getirilemedi",
		"error.user_update_failed":    "Kullanıcı güncellenemedi",
		"error.admin_fetch_failed":    "Yönetici bilgileri getirilemedi",

		"error.restaurant_not_found":     "Restoran bulunamadı",
		"error.restaurant_fetch_failed":  "Restoranlar getirilemedi",
		"error.restaurant_create_failed": "Restoran oluşturulamadı",
		"error.restaurant_update_failed": "Restoran güncellenemedi",
		"error.restaurant_delete_failed": "Restoran silinemedi",
		"error.rating_recalc_failed":     "Restoran puanı yeniden hesaplanamadı",
		"error.restaurant_slug_taken":    "Bu restoran adresi zaten kullanımda",

		"error.menu_item_not_found":     "Menü öğesi bulunamadı",
		"error.menu_fetch_failed":       "Menü getirilemedi",
		"error.menu_item_create_failed": "Menü öğesi oluşturulamadı",
		"error.menu_item_update_failed": "Menü öğesi güncellenemedi",
		"error.menu_item_delete_failed": "Menü öğesi silinemedi",

		"error.coupon_not_found":               "Kupon bulunamadı",
		"error.coupon_inactive":                "Bu kupon aktif değil",
		"error.coupon_not_started":             "Bu kupon henüz geçerli değil",
		"error.coupon_expired":                 "Bu kuponun süresi dolmuş",
		"error.coupon_usage_limit":             "Bu kupon kullanım limitine ulaştı",
		"error.coupon_per_user_limit":          "Bu kuponu kullanma limitinize ulaştınız",
		"error.coupon_min_amount":              "Minimum sipariş tutarı: %s TL",
		"error.coupon_restaurant_not_eligible": "Bu kupon bu restoranda geçerli değil",
		"error.coupon_invalid":                 "Kupon geçersiz",
		"error.coupon_code_taken":              "Bu kupon kodu zaten kullanımda",
		"error.coupon_create_failed":           "Kupon oluşturulamadı",
		"error.coupon_update_failed":           "Kupon güncellenemedi",
		"error.coupon_delete_failed":           "Kupon silinemedi",
		"error.coupon_fetch_failed":            "Kuponlar getirilemedi",
		"error.coupon_redeem_failed":           "Kupon kullanılamadı",

		"error.order_not_found":      "Sipariş bulunamadı",
		"error.order_item_invalid":   "Sipariş kalemi geçersiz",
		"error.order_create_failed":  "Sipariş oluşturulamadı",
		"error.order_fetch_failed":   "Siparişler getirilemedi",
		"error.order_status_invalid": "Geçersiz sipariş durumu",
		"error.order_update_failed":  "Sipariş güncellenemedi",

		"error.review_rating_invalid": "Puan 1 ile 5 arasında olmalıdır",
		"error.review_create_failed":  "Değerlendirme kaydedilemedi",
		"error.review_fetch_failed":   "Değerlendirmeler getirilemedi",

		"error.reservation_not_found":      "Rezervasyon bulunamadı",
		"error.reservation_slot_invalid":   "Geçersiz rezervasyon saati",
		"error.reservation_slot_full":      "Bu saat için kontenjan dolu",
		"error.reservation_status_invalid": "Bu rezervasyon iptal edilemez",
		"error.reservation_party_invalid":  "Geçersiz kişi sayısı",
		"error.reservation_create_failed":  "Rezervasyon oluşturulamadı",
		"error.reservation_fetch_failed":   "Rezervasyonlar getirilemedi",
		"error.reservation_cancel_failed":  "Rezervasyon iptal edilemedi",
		"error.reservation_update_failed":  "Rezervasyon güncellenemedi",

		"error.campaign_not_found":     "Kampanya bulunamadı",
		"error.campaign_fetch_failed":  "Kampanyalar getirilemedi",
		"error.campaign_create_failed": "Kampanya oluşturulamadı",
		"error.campaign_update_failed": "Kampanya güncellenemedi",
		"error.campaign_delete_failed": "Kampanya silinemedi",
		"error.campaign_click_failed":  "Kampanya tıklaması kaydedilemedi",

		"error.notification_not_found":     "Bildirim bulunamadı",
		"error.notification_fetch_failed":  "Bildirimler getirilemedi",
		"error.notification_update_failed": "Bildirim güncellenemedi",

		"error.collection_not_found":     "Koleksiyon bulunamadı",
		"error.collection_fetch_failed":  "Koleksiyonlar getirilemedi",
		"error.collection_create_failed": "Koleksiyon oluşturulamadı",
		"error.collection_update_failed": "Koleksiyon güncellenemedi",
		"error.collection_delete_failed": "Koleksiyon silinemedi",
		"error.collection_slug_taken":    "Bu koleksiyon adresi zaten kullanımda",

		"error.geo_coordinates_invalid": "Geçersiz koordinatlar",
		"error.geocode_unavailable":     "Konum servisi şu anda kullanılamıyor",
		"error.geocode_failed":          "Konum sorgusu başarısız oldu",
		"error.geocode_no_result":       "Bu konum için sonuç bulunamadı",
		"error.outside_delivery_area":   "Bu adres teslimat alanının dışında",

		"error.address_not_found":     "Adres bulunamadı",
		"error.address_fetch_failed":  "Adresler getirilemedi",
		"error.address_create_failed": "Adres eklenemedi",
		"error.address_delete_failed": "Adres silinemedi",
		"error.profile_update_failed": "Profil güncellenemedi",

		"error.dashboard_fetch_failed": "Panel verileri getirilemedi",
		"error.setting_fetch_failed":   "Ayarlar getirilemedi",
		"error.setting_update_failed":  "Ayarlar güncellenemedi",
	},
	constants.LocaleEnUS: {
		"error.bad_request":  "Invalid request",
		"error.unauthorized": "Authentication failed",
		"error.forbidden":    "You are not allowed to perform this action",
		"error.not_found":    "Record not found",
		"error.internal":     "Server error, please try again",

		"error.auth_header_missing": "Authorization header missing",
		"error.auth_header_invalid": "Authorization header invalid",
		"error.token_invalid":       "Invalid token",
		"error.token_revoked":       "Token has been revoked, please sign in again",
		"error.jwt_secret_missing":  "Server token secret is not configured",
		"error.user_disabled":       "Your account has been disabled",

		"error.login_too_many":         "Too many login attempts, retry in %d seconds",
		"error.rate_limited":           "Too many requests, retry in %d seconds",
		"error.rate_limit_unavailable": "Rate limiter is currently unavailable",

		"error.invalid_credentials":     "Incorrect email or password",
		"error.password_policy":         "Password does not meet security requirements",
		"error.password_invalid":        "Current password is incorrect",
		"error.password_change_failed":  "Failed to change password",
		"error.email_taken":             "This email is already registered",
		"error.register_failed":         "Registration could not be completed",
		"error.login_failed":            "Login failed",
		"error.captcha_required":        "Captcha is required",
		"error.captcha_invalid":         "Captcha is incorrect",
		"error.captcha_unavailable":     "Captcha service is unavailable",
		"error.captcha_generate_failed": "Failed to generate captcha",
		"error.captcha_verify_failed":   "Failed to verify captcha",

		"error.user_id_invalid":       "Invalid user id",
		"error.user_id_type_invalid":  "Could not resolve user id",
		"error.admin_id_invalid":      "Invalid admin id",
		"error.admin_id_type_invalid": "Could not resolve admin id",
		"error.user_not_found":        "User not found",
		"error.user_fetch_failed":     "Failed to fetch users",
		"error.user_update_failed":    "Failed to update user",
		"error.admin_fetch_failed":    "Failed to fetch admin profile",

		"error.restaurant_not_found":     "Restaurant not found",
		"error.restaurant_fetch_failed":  "Failed to fetch restaurants",
		"error.restaurant_create_failed": "Failed to create restaurant",
		"error.restaurant_update_failed": "Failed to update restaurant",
		"error.restaurant_delete_failed": "Failed to delete restaurant",
		"error.rating_recalc_failed":     "Failed to recalculate restaurant rating",
		"error.restaurant_slug_taken":    "This restaurant slug is already in use",

		"error.menu_item_not_found":     "Menu item not found",
		"error.menu_fetch_failed":       "Failed to fetch menu",
		"error.menu_item_create_failed": "Failed to create menu item",
		"error.menu_item_update_failed": "Failed to update menu item",
		"error.menu_item_delete_failed": "Failed to delete menu item",

		"error.coupon_not_found":               "Coupon not found",
		"error.coupon_inactive":                "This coupon is not active",
		"error.coupon_not_started":             "This coupon is not valid yet",
		"error.coupon_expired":                 "This coupon has expired",
		"error.coupon_usage_limit":             "This coupon has reached its usage limit",
		"error.coupon_per_user_limit":          "You have reached your usage limit for this coupon",
		"error.coupon_min_amount":              "Minimum order amount: %s TL",
		"error.coupon_restaurant_not_eligible": "This coupon is not valid at this restaurant",
		"error.coupon_invalid":                 "Coupon is invalid",
		"error.coupon_code_taken":              "This coupon code is already in use",
		"error.coupon_create_failed":           "Failed to create coupon",
		"error.coupon_update_failed":           "Failed to update coupon",
		"error.coupon_delete_failed":           "Failed to delete coupon",
		"error.coupon_fetch_failed":            "Failed to fetch coupons",
		"error.coupon_redeem_failed":           "Failed to redeem coupon",

		"error.order_not_found":      "Order not found",
		"error.order_item_invalid":   "Invalid order item",
		"error.order_create_failed":  "Failed to create order",
		"error.order_fetch_failed":   "Failed to fetch orders",
		"error.order_status_invalid": "Invalid order status",
		"error.order_update_failed":  "Failed to update order",

		"error.review_rating_invalid": "Rating must be between 1 and 5",
		"error.review_create_failed":  "Failed to save review",
		"error.review_fetch_failed":   "Failed to fetch reviews",

		"error.reservation_not_found":      "Reservation not found",
		"error.reservation_slot_invalid":   "Invalid reservation time",
		"error.reservation_slot_full":      "This time slot is fully booked",
		"error.reservation_status_invalid": "This reservation cannot be cancelled",
		"error.reservation_party_invalid":  "Invalid party size",
		"error.reservation_create_failed":  "Failed to create reservation",
		"error.reservation_fetch_failed":   "Failed to fetch reservations",
		"error.reservation_cancel_failed":  "Failed to cancel reservation",
		"error.reservation_update_failed":  "Failed to update reservation",

		"error.campaign_not_found":     "Campaign not found",
		"error.campaign_fetch_failed":  "Failed to fetch campaigns",
		"error.campaign_create_failed": "Failed to create campaign",
		"error.campaign_update_failed": "Failed to update campaign",
		"error.campaign_delete_failed": "Failed to delete campaign",
		"error.campaign_click_failed":  "Failed to record campaign click",

		"error.notification_not_found":     "Notification not found",
		"error.notification_fetch_failed":  "Failed to fetch notifications",
		"error.notification_update_failed": "Failed to update notification",

		"error.collection_not_found":     "Collection not found",
		"error.collection_fetch_failed":  "Failed to fetch collections",
		"error.collection_create_failed": "Failed to create collection",
		"error.collection_update_failed": "Failed to update collection",
		"error.collection_delete_failed": "Failed to delete collection",
		"error.collection_slug_taken":    "This collection slug is already in use",

		"error.geo_coordinates_invalid": "Invalid coordinates",
		"error.geocode_unavailable":     "Location service is currently unavailable",
		"error.geocode_failed":          "Location lookup failed",
		"error.geocode_no_result":       "No result found for this location",
		"error.outside_delivery_area":   "This address is outside the delivery area",

		"error.address_not_found":     "Address not found",
		"error.address_fetch_failed":  "Failed to fetch addresses",
		"error.address_create_failed": "Failed to add address",
		"error.address_delete_failed": "Failed to delete address",
		"error.profile_update_failed": "Failed to update profile",

		"error.dashboard_fetch_failed": "Failed to fetch dashboard data",
		"error.setting_fetch_failed":   "Failed to fetch settings",
		"error.setting_update_failed":  "Failed to update settings",
	},
}
