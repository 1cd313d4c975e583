package i18n

var dictionaries = map[string]map[string]string{
	Arabic: {
		"home":               "الرئيسية",
		"shop":               "المتجر",
		"abayas":             "عباءات",
		"hijabs":             "حجاب",
		"dresses":            "فساتين",
		"sportswear":         "ملابس رياضية",
		"accessories":        "إكسسوارات",
		"sales":              "التخفيضات",
		"cart":               "السلة",
		"wishlist":           "المفضلة",
		"account":            "حسابي",
		"login":              "تسجيل الدخول",
		"signup":             "إنشاء حساب",
		"logout":             "تسجيل الخروج",
		"categories":         "الأقسام",
		"brandName":          "أيمن بشير",
		"search":             "ابحث عن المنتجات...",
		"searchResultsFor":   "نتائج البحث عن",
		"noResults":          "لا توجد نتائج",
		"results":            "نتائج",
		"myOrders":           "طلباتي",
		"orderNumber":        "رقم الطلب",
		"orderConfirmation":  "تأكيد الطلب",
		"noOrders":           "لم تقم بإجراء أي طلبات بعد",
		"status":             "الحالة",
		"pending":            "قيد الانتظار",
		"processing":         "جاري التجهيز",
		"shipped":            "تم الشحن",
		"delivered":          "تم التوصيل",
		"cancelled":          "ملغي",
		"paid":               "مدفوع",
		"unpaid":             "غير مدفوع",
		"cash":               "دفع عند الاستلام",
		"card":               "بطاقة ائتمان",
		"shoppingCart":       "سلة التسوق",
		"cartEmpty":          "لا توجد منتجات حالياً",
		"subtotal":           "المجموع الفرعي",
		"discount":           "الخصم",
		"total":              "الإجمالي",
		"shipping":           "الشحن",
		"freeShipping":       "شحن مجاني",
		"currency":           "جنيه",
		"error":              "خطأ",
		"success":            "تم بنجاح",
		"deleted":            "تم الحذف",
		"updated":            "تم التحديث",
		"unauthorized":       "غير مصرح",
		"loginSuccess":       "تم تسجيل الدخول بنجاح",
		"signupSuccess":      "تم إنشاء الحساب بنجاح",
		"logoutSuccess":      "تم تسجيل الخروج",
		"loginFailed":        "البريد الإلكتروني أو كلمة المرور غير صحيحة",
		"signupFailed":       "فشل إنشاء الحساب",
		"sessionExpired":     "انتهت الجلسة، يرجى تسجيل الدخول مرة أخرى",
		"adminOnly":          "ليس لديك صلاحية الوصول إلى لوحة التحكم",
		"requiredFields":     "يرجى ملء جميع الحقول المطلوبة",
		"serviceUnavailable": "الخدمة غير متاحة حالياً، حاول لاحقاً",

		"addedToCart":      "تمت الإضافة إلى السلة",
		"addToCartFailed":  "فشل إضافة المنتج إلى السلة",
		"outOfStock":       "نفذت الكمية",
		"invalidQuantity":  "الكمية غير صحيحة",
		"cartUpdated":      "تم تحديث السلة",
		"cartUpdateFailed": "فشل تحديث السلة",
		"itemRemoved":      "تم حذف المنتج من السلة",
		"cartCleared":      "تم تفريغ السلة",
		"cartLoadFailed":   "فشل تحميل السلة",
		"couponApplied":    "تم تطبيق الكوبون",
		"couponInvalid":    "الكوبون غير صالح",
		"couponRequired":   "يرجى إدخال كود الخصم",

		"addedToWishlist":     "تمت الإضافة إلى المفضلة",
		"removedFromWishlist": "تمت الإزالة من المفضلة",
		"wishlistFailed":      "فشل تحديث المفضلة",

		"orderPlaced":      "تم إنشاء الطلب بنجاح",
		"orderFailed":      "فشل إنشاء الطلب",
		"ordersLoadFailed": "فشل تحميل الطلبات",
		"cartMissing":      "لا توجد سلة لإتمام الطلب",

		"addressSaved":   "تم حفظ العنوان",
		"addressDeleted": "تم حذف العنوان",
		"addressFailed":  "فشل تحديث العنوان",

		"profileUpdated":   "تم تحديث الملف الشخصي",
		"profileFailed":    "فشل تحديث الملف الشخصي",
		"passwordChanged":  "تم تغيير كلمة المرور",
		"passwordFailed":   "فشل تغيير كلمة المرور",
		"passwordMismatch": "كلمتا المرور غير متطابقتين",
		"accountDeleted":   "تم حذف الحساب",

		"reviewSaved":   "تم حفظ التقييم",
		"reviewDeleted": "تم حذف التقييم بنجاح",
		"reviewFailed":  "فشل حفظ التقييم",
		"invalidRating": "التقييم يجب أن يكون من 1 إلى 5",

		"productLoadFailed":    "فشل تحميل بيانات المنتج",
		"productsLoadFailed":   "فشل تحميل المنتجات",
		"productCreated":       "تم إضافة المنتج بنجاح",
		"productUpdated":       "تم تحديث المنتج بنجاح",
		"productDeleted":       "تم حذف المنتج بنجاح",
		"coverImageRequired":   "يجب إضافة صورة رئيسية للمنتج",
		"bulkDone":             "تم تنفيذ العملية على المنتجات المحددة",
		"dashboardLoadFailed":  "فشل تحميل بيانات لوحة التحكم",
		"usersLoadFailed":      "فشل تحميل المستخدمين",
		"userDeleted":          "تم حذف المستخدم بنجاح",
		"roleChanged":          "تم تغيير دور المستخدم بنجاح",
		"brandsLoadFailed":     "فشل تحميل العلامات التجارية",
		"categoriesLoadFailed": "فشل تحميل التصنيفات",
		"reviewsLoadFailed":    "فشل تحميل التقييمات",
		"orderUpdated":         "تم تحديث حالة الطلب",
		"saved":                "تم الحفظ بنجاح",
		"bestSellers":          "الأكثر مبيعاً",
		"topRated":             "الأعلى تقييماً",
		"newArrivals":          "وصل حديثاً",
		"flashSale":            "عروض سريعة",
		"searchFailed":         "فشل البحث",
		"bulkInvalid":          "عملية جماعية غير صالحة",
		"invalidRole":          "دور المستخدم غير صالح",
		"invalidStatus":        "حالة الطلب غير صالحة",
	},
	English: {
		"home":               "Home",
		"shop":               "Shop",
		"abayas":             "Abayas",
		"hijabs":             "Hijabs",
		"dresses":            "Dresses",
		"sportswear":         "Sportswear",
		"accessories":        "Accessories",
		"sales":              "Sales",
		"cart":               "Cart",
		"wishlist":           "Wishlist",
		"account":            "Account",
		"login":              "Login",
		"signup":             "Sign Up",
		"logout":             "Logout",
		"categories":         "Categories",
		"brandName":          "Ayman Besher",
		"search":             "Search products...",
		"searchResultsFor":   "Search results for",
		"noResults":          "No results found",
		"results":            "Results",
		"myOrders":           "My Orders",
		"orderNumber":        "Order Number",
		"orderConfirmation":  "Order Confirmation",
		"noOrders":           "You have no orders yet",
		"status":             "Status",
		"pending":            "Pending",
		"processing":         "Processing",
		"shipped":            "Shipped",
		"delivered":          "Delivered",
		"cancelled":          "Cancelled",
		"paid":               "Paid",
		"unpaid":             "Unpaid",
		"cash":               "Cash on Delivery",
		"card":               "Credit Card",
		"shoppingCart":       "Shopping Cart",
		"cartEmpty":          "Your cart is empty",
		"subtotal":           "Subtotal",
		"discount":           "Discount",
		"total":              "Total",
		"shipping":           "Shipping",
		"freeShipping":       "Free Shipping",
		"currency":           "EGP",
		"error":              "Error",
		"success":            "Success",
		"deleted":            "Deleted",
		"updated":            "Updated",
		"unauthorized":       "Unauthorized",
		"loginSuccess":       "Login Successful",
		"signupSuccess":      "Signup Successful",
		"logoutSuccess":      "Logged out",
		"loginFailed":        "Incorrect email or password",
		"signupFailed":       "Could not create the account",
		"sessionExpired":     "Your session has expired, please log in again",
		"adminOnly":          "You do not have access to the dashboard",
		"requiredFields":     "Please fill in all required fields",
		"serviceUnavailable": "The service is unavailable, try again later",

		"addedToCart":      "Added to cart",
		"addToCartFailed":  "Could not add the product to the cart",
		"outOfStock":       "Out of stock",
		"invalidQuantity":  "Invalid quantity",
		"cartUpdated":      "Cart updated",
		"cartUpdateFailed": "Could not update the cart",
		"itemRemoved":      "Item removed from cart",
		"cartCleared":      "Cart cleared",
		"cartLoadFailed":   "Could not load the cart",
		"couponApplied":    "Coupon applied",
		"couponInvalid":    "Invalid coupon",
		"couponRequired":   "Please enter a coupon code",

		"addedToWishlist":     "Added to wishlist",
		"removedFromWishlist": "Removed from wishlist",
		"wishlistFailed":      "Could not update the wishlist",

		"orderPlaced":      "Order placed successfully",
		"orderFailed":      "Could not place the order",
		"ordersLoadFailed": "Could not load orders",
		"cartMissing":      "There is no cart to check out",

		"addressSaved":   "Address saved",
		"addressDeleted": "Address deleted",
		"addressFailed":  "Could not update the address",

		"profileUpdated":   "Profile updated",
		"profileFailed":    "Could not update the profile",
		"passwordChanged":  "Password changed",
		"passwordFailed":   "Could not change the password",
		"passwordMismatch": "Passwords do not match",
		"accountDeleted":   "Account deleted",

		"reviewSaved":   "Review saved",
		"reviewDeleted": "Review deleted successfully",
		"reviewFailed":  "Could not save the review",
		"invalidRating": "Rating must be between 1 and 5",

		"productLoadFailed":    "Could not load the product",
		"productsLoadFailed":   "Could not load products",
		"productCreated":       "Product added successfully",
		"productUpdated":       "Product updated successfully",
		"productDeleted":       "Product deleted successfully",
		"coverImageRequired":   "A cover image is required",
		"bulkDone":             "Bulk action applied to the selected products",
		"dashboardLoadFailed":  "Could not load dashboard data",
		"usersLoadFailed":      "Could not load users",
		"userDeleted":          "User deleted successfully",
		"roleChanged":          "User role changed successfully",
		"brandsLoadFailed":     "Could not load brands",
		"categoriesLoadFailed": "Could not load categories",
		"reviewsLoadFailed":    "Could not load reviews",
		"orderUpdated":         "Order status updated",
		"saved":                "Saved successfully",
		"bestSellers":          "Best Sellers",
		"topRated":             "Top Rated",
		"newArrivals":          "New Arrivals",
		"flashSale":            "Flash Sale",
		"searchFailed":         "Search failed",
		"bulkInvalid":          "Invalid bulk operation",
		"invalidRole":          "Invalid user role",
		"invalidStatus":        "Invalid order status",
	},
}
