package repository

const (
	selectSession = `SELECT
		id,
		user_id,
		pos_id,
		car_wash_device_id,
		sum,
		bay_type,
		bay_number,
		name,
		free,
		discount,
		final_amount,
		promo_input,
		promo_code_id,
		promo_error,
		used_points,
		max_points,
		points_toggled,
		payment_method,
		processing_status,
		error,
		order_id,
		created_at,
		updated_at
	FROM checkout_sessions`
)
