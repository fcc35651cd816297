package i18n

const (
	KeyAddedToCart          = "cart.added"
	KeyCartUpdated          = "cart.updated"
	KeyOutOfStock           = "stock.out_of_stock"
	KeyQuantityLimit        = "stock.quantity_limit"
	KeyQuantityMinimum      = "stock.quantity_minimum"
	KeySelectionIncomplete  = "selection.incomplete"
	KeyOptionUnavailable    = "selection.option_unavailable"
	KeyProductNotFound      = "product.not_found"
	KeyCartItemNotFound     = "cart.item_not_found"
	KeyWishlistAdded        = "wishlist.added"
	KeyWishlistRemoved      = "wishlist.removed"
	KeyWishlistAddedAll     = "wishlist.added_all"
	KeyReviewSubmitted      = "review.submitted"
	KeyReviewModerated      = "review.moderated"
	KeySessionExpired       = "auth.session_expired"
	KeyUnauthorized         = "auth.unauthorized"
	KeyForbidden            = "auth.forbidden"
	KeyInvalidCredentials   = "auth.invalid_credentials"
	KeyTooManyAttempts      = "auth.too_many_attempts"
	KeyEmailTaken           = "auth.email_taken"
	KeyAccountDisabled      = "auth.account_disabled"
	KeyMFARequired          = "mfa.required"
	KeyMFAInvalid           = "mfa.invalid"
	KeyMFAEnabled           = "mfa.enabled"
	KeyMFADisabled          = "mfa.disabled"
	KeyMFANotSetUp          = "mfa.not_set_up"
	KeyPasswordChanged      = "password.changed"
	KeyPasswordIncorrect    = "password.incorrect"
	KeyPasswordWeak         = "password.weak"
	KeyPasswordMismatch     = "password.mismatch"
	KeyPasswordReused       = "password.reused"
	KeyProfileUpdated       = "profile.updated"
	KeyAvatarUpdated        = "profile.avatar_updated"
	KeyAvatarInvalid        = "profile.avatar_invalid"
	KeyValidationFailed     = "common.validation_failed"
	KeyNotFound             = "common.not_found"
	KeyInternal             = "common.internal"
	KeySaved                = "common.saved"
	KeyDeleted              = "common.deleted"
	KeyEmailPasswordSubject = "email.password_changed.subject"
	KeyEmailPasswordBody    = "email.password_changed.body"
	KeyEmailMFASubject      = "email.mfa_changed.subject"
	KeyEmailMFAEnabledBody  = "email.mfa_enabled.body"
	KeyEmailMFADisabledBody = "email.mfa_disabled.body"
)

var catalog = map[string]map[Lang]string{
	KeyAddedToCart:          {English: "Added to cart", Arabic: "تمت الإضافة إلى السلة"},
	KeyCartUpdated:          {English: "Cart updated", Arabic: "تم تحديث السلة"},
	KeyOutOfStock:           {English: "This selection is out of stock", Arabic: "هذا الخيار غير متوفر في المخزون"},
	KeyQuantityLimit:        {English: "Requested quantity exceeds available stock", Arabic: "الكمية المطلوبة تتجاوز المخزون المتاح"},
	KeyQuantityMinimum:      {English: "Quantity must be at least 1", Arabic: "يجب أن تكون الكمية 1 على الأقل"},
	KeySelectionIncomplete:  {English: "Please select a size and color", Arabic: "يرجى اختيار المقاس واللون"},
	KeyOptionUnavailable:    {English: "This option is not available", Arabic: "هذا الخيار غير متاح"},
	KeyProductNotFound:      {English: "Product not found", Arabic: "المنتج غير موجود"},
	KeyCartItemNotFound:     {English: "Item not found in the cart", Arabic: "المنتج غير موجود في السلة"},
	KeyWishlistAdded:        {English: "Added to wishlist", Arabic: "تمت الإضافة إلى المفضلة"},
	KeyWishlistRemoved:      {English: "Removed from wishlist", Arabic: "تمت الإزالة من المفضلة"},
	KeyWishlistAddedAll:     {English: "Wishlist items added to cart", Arabic: "تمت إضافة منتجات المفضلة إلى السلة"},
	KeyReviewSubmitted:      {English: "Thank you! Your review will appear after moderation.", Arabic: "شكراً لك! ستظهر مراجعتك بعد اعتمادها."},
	KeyReviewModerated:      {English: "Review updated", Arabic: "تم تحديث المراجعة"},
	KeySessionExpired:       {English: "Your session has expired, please sign in again", Arabic: "انتهت صلاحية الجلسة، يرجى تسجيل الدخول مرة أخرى"},
	KeyUnauthorized:         {English: "Please sign in to continue", Arabic: "يرجى تسجيل الدخول للمتابعة"},
	KeyForbidden:            {English: "You do not have permission to do this", Arabic: "ليس لديك صلاحية للقيام بذلك"},
	KeyInvalidCredentials:   {English: "Invalid email or password", Arabic: "البريد الإلكتروني أو كلمة المرور غير صحيحة"},
	KeyTooManyAttempts:      {English: "Too many attempts. Please try again later.", Arabic: "محاولات كثيرة. يرجى المحاولة لاحقاً."},
	KeyEmailTaken:           {English: "Email already registered", Arabic: "البريد الإلكتروني مسجل مسبقاً"},
	KeyAccountDisabled:      {English: "This account has been disabled", Arabic: "تم تعطيل هذا الحساب"},
	KeyMFARequired:          {English: "Enter the verification code from your authenticator app", Arabic: "أدخل رمز التحقق من تطبيق المصادقة"},
	KeyMFAInvalid:           {English: "Invalid verification code", Arabic: "رمز التحقق غير صحيح"},
	KeyMFAEnabled:           {English: "Two-factor authentication enabled", Arabic: "تم تفعيل المصادقة الثنائية"},
	KeyMFADisabled:          {English: "Two-factor authentication disabled", Arabic: "تم إيقاف المصادقة الثنائية"},
	KeyMFANotSetUp:          {English: "Two-factor authentication has not been set up", Arabic: "لم يتم إعداد المصادقة الثنائية"},
	KeyPasswordChanged:      {English: "Password changed. You have been signed out of all devices.", Arabic: "تم تغيير كلمة المرور. تم تسجيل خروجك من جميع الأجهزة."},
	KeyPasswordIncorrect:    {English: "Current password is incorrect", Arabic: "كلمة المرور الحالية غير صحيحة"},
	KeyPasswordWeak:         {English: "Password must be at least 8 characters and include upper and lower case letters, a number and a symbol", Arabic: "يجب أن تتكون كلمة المرور من 8 أحرف على الأقل وتحتوي على حروف كبيرة وصغيرة ورقم ورمز"},
	KeyPasswordMismatch:     {English: "Passwords do not match", Arabic: "كلمتا المرور غير متطابقتين"},
	KeyPasswordReused:       {English: "New password must differ from the current one", Arabic: "يجب أن تختلف كلمة المرور الجديدة عن الحالية"},
	KeyProfileUpdated:       {English: "Profile updated", Arabic: "تم تحديث الملف الشخصي"},
	KeyAvatarUpdated:        {English: "Profile picture updated", Arabic: "تم تحديث الصورة الشخصية"},
	KeyAvatarInvalid:        {English: "Please upload a JPEG, PNG or WebP image", Arabic: "يرجى رفع صورة بصيغة JPEG أو PNG أو WebP"},
	KeyValidationFailed:     {English: "Please check the highlighted fields", Arabic: "يرجى التحقق من الحقول المحددة"},
	KeyNotFound:             {English: "Not found", Arabic: "غير موجود"},
	KeyInternal:             {English: "Something went wrong, please try again", Arabic: "حدث خطأ ما، يرجى المحاولة مرة أخرى"},
	KeySaved:                {English: "Saved", Arabic: "تم الحفظ"},
	KeyDeleted:              {English: "Deleted", Arabic: "تم الحذف"},
	KeyEmailPasswordSubject: {English: "Your password was changed", Arabic: "تم تغيير كلمة المرور الخاصة بك"},
	KeyEmailPasswordBody:    {English: "The password for your account was just changed and all devices were signed out. If this was not you, contact support immediately.", Arabic: "تم تغيير كلمة مرور حسابك للتو وتم تسجيل الخروج من جميع الأجهزة. إذا لم تكن أنت من قام بذلك، يرجى التواصل مع الدعم فوراً."},
	KeyEmailMFASubject:      {English: "Two-factor authentication settings changed", Arabic: "تم تغيير إعدادات المصادقة الثنائية"},
	KeyEmailMFAEnabledBody:  {English: "Two-factor authentication is now enabled on your account.", Arabic: "تم تفعيل المصادقة الثنائية على حسابك."},
	KeyEmailMFADisabledBody: {English: "Two-factor authentication was disabled on your account. If this was not you, contact support immediately.", Arabic: "تم إيقاف المصادقة الثنائية على حسابك. إذا لم تكن أنت من قام بذلك، يرجى التواصل مع الدعم فوراً."},
}
